package cmd

import (
	"fmt"
	"os"

	dockerclient "github.com/docker/docker/client"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/triagehq/logtriage/internal/config"
	"github.com/triagehq/logtriage/internal/ingest"
)

// buildSources turns a resolved config's ingest specs into ingest.Source
// instances, constructing whichever transport clients each kind needs.
func buildSources(specs []config.SourceSpec) ([]ingest.Source, error) {
	sources := make([]ingest.Source, 0, len(specs))
	for _, spec := range specs {
		src, err := buildSource(spec)
		if err != nil {
			return nil, fmt.Errorf("ingest source kind=%s: %w", spec.Kind, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func buildSource(spec config.SourceSpec) (ingest.Source, error) {
	switch spec.Kind {
	case config.FeedDocker:
		cli, err := dockerclient.NewClientWithOpts(dockerclient.FromEnv, dockerclient.WithAPIVersionNegotiation())
		if err != nil {
			return nil, err
		}
		return &ingest.DockerSource{Client: cli, Containers: spec.Containers, Tail: spec.Tail}, nil

	case config.FeedKubernetes:
		restCfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			clientcmd.NewDefaultClientConfigLoadingRules(), &clientcmd.ConfigOverrides{}).ClientConfig()
		if err != nil {
			return nil, err
		}
		clientset, err := kubernetes.NewForConfig(restCfg)
		if err != nil {
			return nil, err
		}
		return &ingest.KubernetesSource{Client: clientset, Namespace: spec.Namespace, Selector: spec.Selector}, nil

	case config.FeedFile:
		return &ingest.FileSource{Path: spec.Path}, nil

	case config.FeedStdin:
		return &ingest.StdinSource{Reader: os.Stdin, Producer: spec.Producer}, nil

	default:
		return nil, fmt.Errorf("unrecognised ingest kind %q", spec.Kind)
	}
}
