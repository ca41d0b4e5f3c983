package hooks_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/go-comments-api/domain"
	"github.com/Guyuepp/go-comments-api/internal/hooks"
)

func TestApplyWithoutFilters(t *testing.T) {
	p := hooks.New[string]("comment_text")
	assert.Equal(t, "comment_text", p.Name())
	assert.Equal(t, "raw", p.Apply(context.Background(), "raw", domain.HookArgs{}))
}

func TestApplyRunsInRegistrationOrder(t *testing.T) {
	p := hooks.New[string]("comment_type")
	p.Register(func(_ context.Context, v string, _ domain.HookArgs) string { return v + "-a" })
	p.Register(nil)
	p.Register(func(_ context.Context, v string, _ domain.HookArgs) string { return v + "-b" })

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "x-a-b", p.Apply(context.Background(), "x", domain.HookArgs{}))
}

func TestApplyPassesArgs(t *testing.T) {
	p := hooks.New[string]("comment_text")
	p.Register(func(_ context.Context, v string, args domain.HookArgs) string {
		if args.View == domain.EditContext && args.Comment != nil {
			return strings.ToUpper(v)
		}
		return v
	})

	c := &domain.Comment{ID: 3}
	assert.Equal(t, "HI", p.Apply(context.Background(), "hi", domain.HookArgs{Comment: c, View: domain.EditContext}))
	assert.Equal(t, "hi", p.Apply(context.Background(), "hi", domain.HookArgs{Comment: c, View: domain.ViewContext}))
}

func TestConcurrentApplyAndRegister(t *testing.T) {
	p := hooks.New[int]("counter")
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Register(func(_ context.Context, v int, _ domain.HookArgs) int { return v + 1 })
		}()
		go func() {
			defer wg.Done()
			_ = p.Apply(context.Background(), 0, domain.HookArgs{})
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, p.Apply(context.Background(), 0, domain.HookArgs{}))
}
