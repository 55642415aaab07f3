package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct{}

func (testConfig) Enabled() bool       { return false }
func (testConfig) ServiceName() string { return "customs-bot-test" }

func Test_Init_DisabledKeepsNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{})
	require.NoError(t, err)

	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
	assert.NoError(t, closer.Close())
}
