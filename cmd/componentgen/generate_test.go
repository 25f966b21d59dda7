package main

import (
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkedTypes(t *testing.T) {
	src := `package sample

//ecs:component
type A struct{}

// B has prose before the directive.
//
//ecs:component
type B int

type C struct{}

type (
	//ecs:component
	D struct{}
	E struct{}
)

//ecs:component
type G[T any] struct{ v T }
`
	file, err := parser.ParseFile(token.NewFileSet(), "sample.go", src, parser.ParseComments)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D"}, markedTypes(file))
}

func TestRender(t *testing.T) {
	src, err := Render(&Package{Name: "sample", Components: []string{"A", "B"}})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package sample")
	assert.Contains(t, out, "\tecs.RegisterComponent[A](r)\n\tecs.RegisterComponent[B](r)\n}")
}

func TestGeneratedFileIsCurrent(t *testing.T) {
	pkg, err := Scan("../../game")
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "Racket", "Ball", "Wall", "Transform", "Sprite"}, pkg.Components)

	want, err := Render(pkg)
	require.NoError(t, err)

	got, err := os.ReadFile("../../game/components_gen.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run go generate ./game")
}

func TestScanWithoutComponents(t *testing.T) {
	_, err := Scan("../../logging")
	assert.ErrorIs(t, err, ErrNoComponents)
}
