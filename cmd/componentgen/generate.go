package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

const directive = "//ecs:component"

// Package is what the generator needs to know about a scanned package.
type Package struct {
	Name       string
	Components []string
}

var ErrNoComponents = errors.New("no //ecs:component types found")

// Scan loads the package in dir and returns the marked types in source order.
func Scan(dir string) (*Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedFiles,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load %s: expected one package, got %d", dir, len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("load %s: %v", dir, pkg.Errors[0])
	}

	result := &Package{Name: pkg.Name}
	for _, file := range pkg.Syntax {
		result.Components = append(result.Components, markedTypes(file)...)
	}

	if len(result.Components) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoComponents)
	}
	return result, nil
}

func markedTypes(file *ast.File) []string {
	var names []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}
			if hasDirective(doc) && ts.TypeParams == nil {
				names = append(names, ts.Name.Name)
			}
		}
	}
	return names
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == directive {
			return true
		}
	}
	return false
}

var registerTemplate = template.Must(template.New("register").Parse(`// Code generated by componentgen. DO NOT EDIT.

package {{.Name}}

import "github.com/plus3/paddlearena/ecs"

// RegisterComponents registers every component kind declared in this package.
func RegisterComponents(r *ecs.ComponentRegistry) {
{{- range .Components}}
	ecs.RegisterComponent[{{.}}](r)
{{- end}}
}
`))

// Render produces the gofmt'ed source of the registration file.
func Render(pkg *Package) ([]byte, error) {
	var buf bytes.Buffer
	if err := registerTemplate.Execute(&buf, pkg); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
