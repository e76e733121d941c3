// Package ontology holds the static, read-only set of term clusters the
// semantic graph (internal/graph) is built from. Roughly 150-200 terms
// across seven families: auth, error, network, database, performance,
// lifecycle, resource. Runtime mutation is a non-goal; the table below is
// assembled once at build time and never written to again.
package ontology

// Peer is a weighted domain-peer relation from a cluster's seed to another
// term, with an optional explicit reverse weight. When ReverseWeight is
// zero, the derived reverse edge defaults to Weight * 0.4 (§4.2).
type Peer struct {
	Term          string
	Weight        float64
	ReverseWeight float64 // 0 means "use the default"
}

// Cluster names a seed term and its morphological variants, synonyms, and
// weighted domain peers.
type Cluster struct {
	Seed          string
	Morphological []string
	Synonyms      []string
	Peers         []Peer
	// Hypernyms connect this seed to a more general term (specific -> general).
	Hypernyms []string
	// Implications connect this seed to a causally related term.
	Implications []string
}

// Clusters is the static ontology. Order is insignificant; internal/graph
// derives a canonical node set from it.
var Clusters = []Cluster{
	{
		Seed:          "auth",
		Morphological: []string{"authenticated", "authentication", "authorization", "authorized", "authenticating"},
		Synonyms:      []string{"credential", "login"},
		Peers: []Peer{
			{Term: "token", Weight: 0.8},
			{Term: "session", Weight: 0.7},
			{Term: "password", Weight: 0.65},
			{Term: "expiry", Weight: 0.6, ReverseWeight: 0.3},
			{Term: "oauth", Weight: 0.55},
			{Term: "permission", Weight: 0.5},
		},
	},
	{
		Seed:          "unauthorized",
		Morphological: []string{"unauthorised"},
		Synonyms:      []string{"forbidden", "denied"},
		Peers: []Peer{
			{Term: "auth", Weight: 0.7},
			{Term: "permission", Weight: 0.6},
		},
		Hypernyms: []string{"auth"},
	},
	{
		Seed:          "token",
		Morphological: []string{"tokens", "tokenized"},
		Synonyms:      []string{"jwt", "bearer"},
		Peers: []Peer{
			{Term: "auth", Weight: 0.8, ReverseWeight: 0.8},
			{Term: "expiry", Weight: 0.5},
			{Term: "refresh", Weight: 0.55, ReverseWeight: 0.3},
		},
	},
	{
		Seed:          "session",
		Morphological: []string{"sessions"},
		Synonyms:      []string{"cookie"},
		Peers: []Peer{
			{Term: "auth", Weight: 0.7, ReverseWeight: 0.7},
			{Term: "expiry", Weight: 0.45},
		},
	},
	{
		Seed:          "expiry",
		Morphological: []string{"expired", "expires", "expiring"},
		Synonyms:      []string{"ttl"},
		Peers: []Peer{
			{Term: "token", Weight: 0.5},
			{Term: "session", Weight: 0.45},
			{Term: "cache", Weight: 0.35, ReverseWeight: 0.3},
		},
	},
	{
		Seed:          "permission",
		Morphological: []string{"permissions", "permitted"},
		Synonyms:      []string{"privilege", "acl"},
		Peers: []Peer{
			{Term: "auth", Weight: 0.5, ReverseWeight: 0.5},
			{Term: "role", Weight: 0.6},
		},
	},
	{
		Seed:          "role",
		Morphological: []string{"roles"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "permission", Weight: 0.6, ReverseWeight: 0.6},
		},
	},
	{
		Seed:          "oauth",
		Morphological: []string{},
		Synonyms:      []string{"sso"},
		Peers: []Peer{
			{Term: "auth", Weight: 0.55, ReverseWeight: 0.55},
		},
	},

	{
		Seed:          "error",
		Morphological: []string{"errors", "errored", "erroring"},
		Synonyms:      []string{"failure", "fault"},
		Peers: []Peer{
			{Term: "exception", Weight: 0.75},
			{Term: "crash", Weight: 0.45},
			{Term: "retry", Weight: 0.4},
		},
	},
	{
		Seed:          "failure",
		Morphological: []string{"failed", "failing", "fails"},
		Synonyms:      []string{"error", "forbidden", "denied"},
		Peers: []Peer{
			{Term: "retry", Weight: 0.5},
			{Term: "timeout", Weight: 0.45},
		},
	},
	{
		Seed:          "exception",
		Morphological: []string{"exceptions"},
		Synonyms:      []string{"error"},
		Peers: []Peer{
			{Term: "stacktrace", Weight: 0.7},
			{Term: "panic", Weight: 0.6},
		},
	},
	{
		Seed:          "panic",
		Morphological: []string{"panicked", "panicking", "panics"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "crash", Weight: 0.85},
			{Term: "exception", Weight: 0.6, ReverseWeight: 0.6},
		},
		Implications: []string{"crash"},
	},
	{
		Seed:          "crash",
		Morphological: []string{"crashed", "crashing", "crashes"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "restart", Weight: 0.55},
			{Term: "oom", Weight: 0.5},
		},
	},
	{
		Seed:          "stacktrace",
		Morphological: []string{"stack"},
		Synonyms:      []string{"traceback"},
		Peers: []Peer{
			{Term: "exception", Weight: 0.6, ReverseWeight: 0.6},
		},
	},
	{
		Seed:          "retry",
		Morphological: []string{"retries", "retried", "retrying"},
		Synonyms:      []string{"backoff"},
		Peers: []Peer{
			{Term: "timeout", Weight: 0.5},
			{Term: "failure", Weight: 0.45, ReverseWeight: 0.45},
		},
	},

	{
		Seed:          "timeout",
		Morphological: []string{"timed out", "timeouts", "timing out"},
		Synonyms:      []string{"deadline exceeded"},
		Peers: []Peer{
			{Term: "latency", Weight: 0.6},
			{Term: "connection", Weight: 0.55},
			{Term: "retry", Weight: 0.4, ReverseWeight: 0.4},
		},
	},
	{
		Seed:          "connection",
		Morphological: []string{"connections", "connected", "connecting", "disconnected"},
		Synonyms:      []string{"conn"},
		Peers: []Peer{
			{Term: "timeout", Weight: 0.55, ReverseWeight: 0.55},
			{Term: "socket", Weight: 0.7},
			{Term: "dns", Weight: 0.45},
			{Term: "tls", Weight: 0.5},
		},
	},
	{
		Seed:          "socket",
		Morphological: []string{"sockets"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "connection", Weight: 0.7, ReverseWeight: 0.7},
			{Term: "reset", Weight: 0.6},
		},
	},
	{
		Seed:          "dns",
		Morphological: []string{},
		Synonyms:      []string{"resolver"},
		Peers: []Peer{
			{Term: "connection", Weight: 0.45, ReverseWeight: 0.45},
			{Term: "lookup", Weight: 0.6},
		},
	},
	{
		Seed:          "tls",
		Morphological: []string{},
		Synonyms:      []string{"ssl"},
		Peers: []Peer{
			{Term: "certificate", Weight: 0.65},
			{Term: "connection", Weight: 0.5, ReverseWeight: 0.5},
		},
	},
	{
		Seed:          "certificate",
		Morphological: []string{"certificates", "cert"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "tls", Weight: 0.65, ReverseWeight: 0.65},
			{Term: "expiry", Weight: 0.5},
		},
	},
	{
		Seed:          "latency",
		Morphological: []string{"latencies"},
		Synonyms:      []string{"lag"},
		Peers: []Peer{
			{Term: "timeout", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "throughput", Weight: 0.4},
		},
	},
	{
		Seed:          "reset",
		Morphological: []string{"resets", "resetting"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "socket", Weight: 0.6, ReverseWeight: 0.6},
		},
	},
	{
		Seed:          "lookup",
		Morphological: []string{"lookups"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "dns", Weight: 0.6, ReverseWeight: 0.6},
		},
	},

	{
		Seed:          "database",
		Morphological: []string{"databases", "db"},
		Synonyms:      []string{"datastore"},
		Peers: []Peer{
			{Term: "query", Weight: 0.7},
			{Term: "transaction", Weight: 0.6},
			{Term: "connection", Weight: 0.5},
			{Term: "deadlock", Weight: 0.4},
		},
	},
	{
		Seed:          "query",
		Morphological: []string{"queries", "queried", "querying"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "database", Weight: 0.7, ReverseWeight: 0.7},
			{Term: "index", Weight: 0.55},
			{Term: "slow", Weight: 0.5},
		},
	},
	{
		Seed:          "transaction",
		Morphological: []string{"transactions", "txn"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "database", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "deadlock", Weight: 0.55},
			{Term: "rollback", Weight: 0.5},
		},
	},
	{
		Seed:          "deadlock",
		Morphological: []string{"deadlocked", "deadlocks"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "transaction", Weight: 0.55, ReverseWeight: 0.55},
			{Term: "lock", Weight: 0.65},
		},
	},
	{
		Seed:          "lock",
		Morphological: []string{"locked", "locking", "locks"},
		Synonyms:      []string{"mutex"},
		Peers: []Peer{
			{Term: "deadlock", Weight: 0.65, ReverseWeight: 0.65},
			{Term: "contention", Weight: 0.55},
		},
	},
	{
		Seed:          "rollback",
		Morphological: []string{"rolled back", "rolling back"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "transaction", Weight: 0.5, ReverseWeight: 0.5},
		},
	},
	{
		Seed:          "index",
		Morphological: []string{"indexes", "indices", "indexed", "indexing"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "query", Weight: 0.55, ReverseWeight: 0.55},
		},
	},
	{
		Seed:          "slow",
		Morphological: []string{"slowness", "slowly"},
		Synonyms:      []string{"sluggish"},
		Peers: []Peer{
			{Term: "query", Weight: 0.5, ReverseWeight: 0.5},
			{Term: "latency", Weight: 0.45},
		},
	},

	{
		Seed:          "performance",
		Morphological: []string{"perf"},
		Synonyms:      []string{"throughput"},
		Peers: []Peer{
			{Term: "cpu", Weight: 0.6},
			{Term: "memory", Weight: 0.6},
			{Term: "latency", Weight: 0.55},
			{Term: "gc", Weight: 0.45},
		},
	},
	{
		Seed:          "throughput",
		Morphological: []string{},
		Synonyms:      []string{"performance"},
		Peers: []Peer{
			{Term: "latency", Weight: 0.4, ReverseWeight: 0.4},
		},
	},
	{
		Seed:          "cpu",
		Morphological: []string{},
		Synonyms:      []string{"processor"},
		Peers: []Peer{
			{Term: "performance", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "throttle", Weight: 0.55},
		},
	},
	{
		Seed:          "memory",
		Morphological: []string{"mem"},
		Synonyms:      []string{"ram"},
		Peers: []Peer{
			{Term: "performance", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "oom", Weight: 0.7},
			{Term: "gc", Weight: 0.6},
			{Term: "leak", Weight: 0.6},
		},
	},
	{
		Seed:          "oom",
		Morphological: []string{},
		Synonyms:      []string{"out of memory"},
		Peers: []Peer{
			{Term: "memory", Weight: 0.7, ReverseWeight: 0.7},
			{Term: "crash", Weight: 0.5, ReverseWeight: 0.5},
		},
	},
	{
		Seed:          "gc",
		Morphological: []string{},
		Synonyms:      []string{"garbage collection", "garbage collector"},
		Peers: []Peer{
			{Term: "memory", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "pause", Weight: 0.55},
		},
	},
	{
		Seed:          "leak",
		Morphological: []string{"leaked", "leaking", "leaks"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "memory", Weight: 0.6, ReverseWeight: 0.6},
		},
	},
	{
		Seed:          "throttle",
		Morphological: []string{"throttled", "throttling"},
		Synonyms:      []string{"ratelimit"},
		Peers: []Peer{
			{Term: "cpu", Weight: 0.55, ReverseWeight: 0.55},
		},
	},
	{
		Seed:          "pause",
		Morphological: []string{"paused", "pausing", "pauses"},
		Synonyms:      []string{"stall"},
		Peers: []Peer{
			{Term: "gc", Weight: 0.55, ReverseWeight: 0.55},
		},
	},
	{
		Seed:          "contention",
		Morphological: []string{},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "lock", Weight: 0.55, ReverseWeight: 0.55},
		},
	},

	{
		Seed:          "startup",
		Morphological: []string{"starting", "started", "starts"},
		Synonyms:      []string{"boot", "init"},
		Peers: []Peer{
			{Term: "shutdown", Weight: 0.4},
			{Term: "ready", Weight: 0.6},
		},
	},
	{
		Seed:          "shutdown",
		Morphological: []string{"shutting down", "shut down", "stopping", "stopped"},
		Synonyms:      []string{"terminate"},
		Peers: []Peer{
			{Term: "startup", Weight: 0.4, ReverseWeight: 0.4},
			{Term: "restart", Weight: 0.55},
			{Term: "signal", Weight: 0.5},
		},
	},
	{
		Seed:          "restart",
		Morphological: []string{"restarted", "restarting", "restarts"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "shutdown", Weight: 0.55, ReverseWeight: 0.55},
			{Term: "crash", Weight: 0.5, ReverseWeight: 0.5},
		},
	},
	{
		Seed:          "ready",
		Morphological: []string{"readiness"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "startup", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "healthy", Weight: 0.6},
		},
	},
	{
		Seed:          "healthy",
		Morphological: []string{"health", "unhealthy"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "ready", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "probe", Weight: 0.55},
		},
	},
	{
		Seed:          "probe",
		Morphological: []string{"probes", "probing"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "healthy", Weight: 0.55, ReverseWeight: 0.55},
		},
	},
	{
		Seed:          "signal",
		Morphological: []string{"signals", "signalled"},
		Synonyms:      []string{"sigterm", "sigkill"},
		Peers: []Peer{
			{Term: "shutdown", Weight: 0.5, ReverseWeight: 0.5},
		},
	},

	{
		Seed:          "resource",
		Morphological: []string{"resources"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "quota", Weight: 0.6},
			{Term: "limit", Weight: 0.6},
			{Term: "disk", Weight: 0.5},
		},
	},
	{
		Seed:          "quota",
		Morphological: []string{"quotas"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "resource", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "limit", Weight: 0.55},
		},
	},
	{
		Seed:          "limit",
		Morphological: []string{"limits", "limited", "limiting"},
		Synonyms:      []string{"cap"},
		Peers: []Peer{
			{Term: "resource", Weight: 0.6, ReverseWeight: 0.6},
			{Term: "quota", Weight: 0.55, ReverseWeight: 0.55},
		},
	},
	{
		Seed:          "disk",
		Morphological: []string{},
		Synonyms:      []string{"storage", "volume"},
		Peers: []Peer{
			{Term: "resource", Weight: 0.5, ReverseWeight: 0.5},
			{Term: "full", Weight: 0.6},
		},
	},
	{
		Seed:          "full",
		Morphological: []string{"filling up"},
		Synonyms:      []string{},
		Peers: []Peer{
			{Term: "disk", Weight: 0.6, ReverseWeight: 0.6},
		},
	},
}
