package dispute_test

import (
	"testing"
	"time"

	"lorrylink/internal/core/domain/model/dispute"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenDispute(t *testing.T) *dispute.Dispute {
	t.Helper()
	d, err := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(),
		"payment", "driver demanded extra cash at delivery", nil, nil)
	require.NoError(t, err)
	return d
}

func TestNewDispute(t *testing.T) {
	t.Run("valid dispute starts open", func(t *testing.T) {
		id := kernel.NewUUID()
		raisedBy := kernel.NewUUID()
		loadID := kernel.NewUUID()

		d, err := dispute.NewDispute(id, raisedBy, "damage",
			"goods arrived wet", &loadID, nil)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.WasRaisedBy(raisedBy))
		require.NotNil(t, d.LoadID())
		assert.True(t, d.LoadID().IsEqual(loadID))
		assert.Nil(t, d.DriverID())
		assert.Equal(t, dispute.Open, d.Status())
		assert.Empty(t, d.ResolutionDetails())
		assert.NoError(t, d.Validate())
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(),
			"", "something happened", nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing message", func(t *testing.T) {
		_, err := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(),
			"payment", "", nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing raiser", func(t *testing.T) {
		var zero kernel.UUID
		_, err := dispute.NewDispute(kernel.NewUUID(), zero,
			"payment", "something happened", nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not constructed", func(t *testing.T) {
		var d dispute.Dispute
		require.ErrorIs(t, d.Validate(), dispute.ErrDisputeIsNotConstructed)
	})
}

func TestDispute_MarkUnderReview(t *testing.T) {
	d := newOpenDispute(t)

	require.NoError(t, d.MarkUnderReview())
	assert.Equal(t, dispute.UnderReview, d.Status())

	require.ErrorIs(t, d.MarkUnderReview(), errs.ErrInvalidState)
}

func TestDispute_Resolve(t *testing.T) {
	t.Run("plain resolution text closes as resolved", func(t *testing.T) {
		d := newOpenDispute(t)

		require.NoError(t, d.Resolve("refund issued to the owner", nil))
		assert.Equal(t, dispute.Resolved, d.Status())
		assert.Equal(t, "refund issued to the owner", d.ResolutionDetails())
	})

	t.Run("text containing reject closes as rejected", func(t *testing.T) {
		d := newOpenDispute(t)

		require.NoError(t, d.Resolve("claim Rejected: no evidence of damage", nil))
		assert.Equal(t, dispute.Rejected, d.Status())
	})

	t.Run("explicit status wins over the text", func(t *testing.T) {
		d := newOpenDispute(t)

		explicit := dispute.Resolved
		require.NoError(t, d.Resolve("we reject none of the claims", &explicit))
		assert.Equal(t, dispute.Resolved, d.Status())
	})

	t.Run("explicit status must be terminal", func(t *testing.T) {
		d := newOpenDispute(t)

		explicit := dispute.UnderReview
		require.ErrorIs(t, d.Resolve("done", &explicit), errs.ErrValueIsInvalid)
		assert.Equal(t, dispute.Open, d.Status())
	})

	t.Run("resolution text is required", func(t *testing.T) {
		d := newOpenDispute(t)
		require.ErrorIs(t, d.Resolve("", nil), errs.ErrValueIsRequired)
	})

	t.Run("closed dispute cannot be resolved again", func(t *testing.T) {
		d := newOpenDispute(t)
		require.NoError(t, d.Resolve("refund issued", nil))

		err := d.Resolve("second opinion", nil)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "refund issued", d.ResolutionDetails())
	})

	t.Run("resolve straight from under review", func(t *testing.T) {
		d := newOpenDispute(t)
		require.NoError(t, d.MarkUnderReview())
		require.NoError(t, d.Resolve("partial refund", nil))
		assert.Equal(t, dispute.Resolved, d.Status())
	})
}

func TestRestoreDispute(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		raisedBy := kernel.NewUUID()
		driverID := kernel.NewUUID()
		createdAt := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

		d, err := dispute.RestoreDispute(id, raisedBy, "conduct",
			"driver was unreachable for two days", nil, &driverID,
			dispute.Rejected, "no contract violation found", createdAt)

		require.NoError(t, err)
		assert.Equal(t, dispute.Rejected, d.Status())
		assert.Equal(t, "no contract violation found", d.ResolutionDetails())
		assert.True(t, d.DriverID().IsEqual(driverID))
		assert.Equal(t, createdAt, d.CreatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := dispute.RestoreDispute(kernel.NewUUID(), kernel.NewUUID(),
			"conduct", "message", nil, nil, dispute.Unknown, "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseStatus(t *testing.T) {
	for input, expected := range map[string]dispute.Status{
		"open":         dispute.Open,
		"under_review": dispute.UnderReview,
		"resolved":     dispute.Resolved,
		"rejected":     dispute.Rejected,
	} {
		status, err := dispute.ParseStatus(input)
		require.NoError(t, err)
		assert.Equal(t, expected, status)
	}

	_, err := dispute.ParseStatus("closed")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
