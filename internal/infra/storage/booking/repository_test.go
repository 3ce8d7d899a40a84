package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/ptr"
)

func TestListQuery_SearchIncludesPhone(t *testing.T) {
	query, args, err := listQuery(1, domain.BookingsFilter{Query: ptr.Ptr("+7 999")}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "customer_name ILIKE")
	assert.Contains(t, query, "customer_email ILIKE")
	assert.Contains(t, query, "customer_phone ILIKE")
	assert.Contains(t, query, "service_name ILIKE")
	assert.Contains(t, args, "%+7 999%")
}

func TestListQuery_SearchEscapesWildcards(t *testing.T) {
	_, args, err := listQuery(1, domain.BookingsFilter{Query: ptr.Ptr("a_b%")}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, args, `%a\_b\%%`)
}

func TestListQuery_BlankSearchIgnored(t *testing.T) {
	query, _, err := listQuery(1, domain.BookingsFilter{Query: ptr.Ptr("   ")}).ToSql()

	require.NoError(t, err)
	assert.NotContains(t, query, "ILIKE")
}
