package k8s_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/kubeonoff/kubeonoff/internal/adapters/outbound/k8s"
)

func TestAPIPinger(t *testing.T) {
	t.Parallel()

	p := k8s.NewAPIPinger(fake.NewSimpleClientset())
	require.Equal(t, "k8s-api", p.Name())
	require.NoError(t, p.Ping(t.Context()))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.ErrorIs(t, p.Ping(ctx), context.Canceled)
}
