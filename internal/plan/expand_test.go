package plan

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extenum-generator/internal/syntax"
)

func TestExpandAllKeepsOrder(t *testing.T) {
	var reqs []Request

	for i := range 50 {
		decl := enumDecl(fmt.Sprintf("Enum%d", i), knownCases("int", bare("A"), bare("B")))
		reqs = append(reqs, Request{Decl: decl, Options: DefaultOptions()})
	}

	res, err := ExpandAll(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, res, len(reqs))

	for i, m := range res {
		assert.Equal(t, fmt.Sprintf("Enum%d", i), m.Enum)
	}
}

func TestExpandAllFirstErrorInOrder(t *testing.T) {
	notPrivate := knownCases("string")
	notPrivate.Modifiers = nil

	reqs := []Request{
		{Decl: colorDecl(), Options: DefaultOptions()},
		{Decl: enumDecl("Second", notPrivate), Options: DefaultOptions()},
		{Decl: &syntax.TypeDecl{Kind: syntax.DeclStruct, Name: "Third"}, Options: DefaultOptions()},
	}

	for range 10 {
		res, err := ExpandAll(context.Background(), reqs)
		assert.Nil(t, res)
		require.ErrorIs(t, err, ErrKnownCasesNotPrivate)
		assert.Contains(t, err.Error(), "Second")
	}
}

func TestExpandAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExpandAll(ctx, []Request{{Decl: colorDecl(), Options: DefaultOptions()}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpandAllEmpty(t *testing.T) {
	res, err := ExpandAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}
