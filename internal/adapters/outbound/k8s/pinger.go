package k8s

import (
	"context"
	"fmt"

	"k8s.io/client-go/kubernetes"
)

// APIPinger checks that the cluster API server answers.
type APIPinger struct {
	clientset kubernetes.Interface
}

func NewAPIPinger(clientset kubernetes.Interface) *APIPinger {
	return &APIPinger{clientset: clientset}
}

func (p *APIPinger) Name() string {
	return "k8s-api"
}

// Ping asks the API server for its version.
func (p *APIPinger) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := p.clientset.Discovery().ServerVersion(); err != nil {
		return fmt.Errorf("server version: %w", err)
	}

	return nil
}
