package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/go-comments-api/domain"
)

func TestListQueryFilter(t *testing.T) {
	tests := []struct {
		name   string
		q      domain.ListQuery
		limit  int
		offset int
	}{
		{"first page", domain.ListQuery{PerPage: 10, Page: 1}, 10, 0},
		{"third page", domain.ListQuery{PerPage: 20, Page: 3}, 20, 40},
		{"page below one", domain.ListQuery{PerPage: 10, Page: -4}, 10, 0},
		{"no page size", domain.ListQuery{Page: 2}, domain.DefaultPerPage, domain.DefaultPerPage},
		{"negative page size", domain.ListQuery{PerPage: -5, Page: 1}, domain.DefaultPerPage, 0},
		{"last exact page", domain.ListQuery{PerPage: 1, Page: math.MaxInt}, 1, math.MaxInt - 1},
		{"page past the end", domain.ListQuery{PerPage: 100, Page: math.MaxInt/100 + 2}, 100, math.MaxInt},
		{"largest page", domain.ListQuery{PerPage: 100, Page: math.MaxInt}, 100, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.q.Filter()
			assert.Equal(t, tt.limit, f.Limit)
			assert.Equal(t, tt.offset, f.Offset)
			assert.GreaterOrEqual(t, f.Offset, 0)
		})
	}
}

func TestApprovalStateStatus(t *testing.T) {
	assert.Equal(t, "hold", domain.ApprovalHold.Status())
	assert.Equal(t, "approved", domain.ApprovalApproveKey.Status())
	assert.Equal(t, "spam", domain.ApprovalSpam.Status())
}
