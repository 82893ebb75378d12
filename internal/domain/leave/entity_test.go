package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusIsTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, RequestStatusPending.IsTerminal())
	assert.True(t, RequestStatusApproved.IsTerminal())
	assert.True(t, RequestStatusRejected.IsTerminal())
	assert.True(t, RequestStatusCancelled.IsTerminal())
}
