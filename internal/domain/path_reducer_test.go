package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LinnaX7/PReMM/internal/domain"
)

func TestReducePaths(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name: "empty input",
		},
		{
			name:  "longer chain replaces its prefix",
			paths: []string{"t→a→m1", "t→a→b→m1", "t→x→m2"},
			want:  []string{"t→a→b→m1", "t→x→m2"},
		},
		{
			name:  "ordered nodes collapse into the longer chain",
			paths: []string{"t→a→m1", "t→b→a→c→m1"},
			want:  []string{"t→b→a→c→m1"},
		},
		{
			name:  "contained chain is dropped",
			paths: []string{"FooTest->Foo#bar->Foo#baz", "Foo#bar->Foo#baz"},
			want:  []string{"FooTest->Foo#bar->Foo#baz"},
		},
		{
			name:  "substring match is unanchored",
			paths: []string{"a->b", "x->a->b->c"},
			want:  []string{"x->a->b->c"},
		},
		{
			name:  "replacement drops later covered entries",
			paths: []string{"t->a", "t->x", "t->y", "t->a->x->y"},
			want:  []string{"t->a->x->y"},
		},
		{
			name:  "replacement keeps position",
			paths: []string{"t->a", "u->v", "t->a->b"},
			want:  []string{"t->a->b", "u->v"},
		},
		{
			name:  "empty chains are ignored",
			paths: []string{"", "t->a", ""},
			want:  []string{"t->a"},
		},
		{
			name:  "duplicates collapse",
			paths: []string{"t->a", "t->a"},
			want:  []string{"t->a"},
		},
		{
			name:  "unrelated chains are kept in order",
			paths: []string{"t->b", "t->a"},
			want:  []string{"t->b", "t->a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ReducePaths(tt.paths))
		})
	}
}

func TestReducePaths_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"t→a→m1", "t→a→b→m1", "t→x→m2"},
		{"t->a", "t->x", "t->a->x->y", "s->q"},
		{"A->B->C", "B->C", "A->C", "D"},
	}

	for _, in := range inputs {
		once := domain.ReducePaths(in)
		assert.Equal(t, once, domain.ReducePaths(once), "input %v", in)
	}
}

func TestReducePaths_NoEntryContainsAnother(t *testing.T) {
	in := []string{"t->a", "t->a->b", "u->v", "t->a->b->c", "u", "w->x", "v"}

	out := domain.ReducePaths(in)

	assert.Equal(t, []string{"t->a->b->c", "u->v", "w->x"}, out)

	for i, p := range out {
		for j, q := range out {
			if i != j {
				assert.NotContains(t, p, q)
			}
		}
	}
}
