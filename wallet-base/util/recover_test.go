package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	var recovered error
	WithRecover("test-WithRecover", func() {
		panic("panic here!")
	}, func(err error) {
		recovered = err
	})
	require.EqualError(t, recovered, "panic here!")

	recovered = nil
	WithRecover("test-WithRecover", func() {}, func(err error) {
		recovered = err
	})
	require.NoError(t, recovered)
}
