package ingest

import (
	"bufio"
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	log "github.com/sirupsen/logrus"

	"github.com/triagehq/logtriage/internal/store"
)

// KubernetesSource streams container logs for every pod matching a label
// selector in a namespace, one reconnecting goroutine per container, the same
// shape as DockerSource but fed by client-go's pod logs subresource
// instead of the Docker socket.
type KubernetesSource struct {
	Client    kubernetes.Interface
	Namespace string
	Selector  string // label selector; empty means all pods in Namespace

	log *log.Entry
}

// Run lists the namespace's matching pods once and streams logs for every
// container of every pod it finds, until ctx is cancelled. Pods created
// after that list are not followed.
func (k *KubernetesSource) Run(ctx context.Context, s *store.Store) error {
	k.log = log.WithField("component", "ingest.kubernetes")

	pods, err := k.Client.CoreV1().Pods(k.Namespace).List(ctx, metav1.ListOptions{LabelSelector: k.Selector})
	if err != nil {
		return err
	}

	var total int
	for _, pod := range pods.Items {
		total += len(pod.Spec.Containers)
	}

	done := make(chan struct{}, total)
	for _, pod := range pods.Items {
		pod := pod
		for _, container := range pod.Spec.Containers {
			container := container
			go func() {
				k.streamContainer(ctx, s, pod, container.Name)
				done <- struct{}{}
			}()
		}
	}
	for i := 0; i < total; i++ {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (k *KubernetesSource) streamContainer(ctx context.Context, s *store.Store, pod corev1.Pod, container string) {
	producer := pod.Namespace + "/" + pod.Name + "/" + container
	tailLines := int64(50)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		req := k.Client.CoreV1().Pods(pod.Namespace).GetLogs(pod.Name, &corev1.PodLogOptions{
			Container: container,
			Follow:    true,
			TailLines: &tailLines,
		})
		stream, err := req.Stream(ctx)
		if err != nil {
			k.log.WithError(err).WithField("pod", producer).Debug("pod logs stream failed, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
				continue
			}
		}
		tailLines = 0 // only the first connection replays history

		sc := bufio.NewScanner(stream)
		sc.Buffer(make([]byte, 64*1024), 1024*1024)
		for sc.Scan() {
			s.Push(Normalize(store.Kubernetes, producer, sc.Text(), time.Now(), []store.Field{
				{Name: "pod", Value: pod.Name},
				{Name: "namespace", Value: pod.Namespace},
				{Name: "container", Value: container},
			}))
		}
		stream.Close()

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
