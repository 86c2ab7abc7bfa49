/*
Package archtest 补充依赖规则之外的结构校验：按目录解析类型声明，检查命名与接口约定。

包之间的依赖规则由 github.com/matthewmcnew/archtest 校验，见 layers_test.go。
这里只解析类型声明，不编译代码；_test.go 文件被忽略。
*/
package archtest

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// FindModuleRoot 从 dir 向上查找 go.mod 所在目录
func FindModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		dir = parent
	}
}

// Types 返回 dir 中非测试文件声明的顶层类型，值表示是否为接口
func Types(dir string) (map[string]bool, error) {
	fset := token.NewFileSet()
	notTest := func(fi os.FileInfo) bool { return !strings.HasSuffix(fi.Name(), "_test.go") }

	pkgs, err := parser.ParseDir(fset, dir, notTest, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dir, err)
	}

	types := make(map[string]bool)
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.TYPE {
					continue
				}
				for _, spec := range gen.Specs {
					ts := spec.(*ast.TypeSpec)
					_, isInterface := ts.Type.(*ast.InterfaceType)
					types[ts.Name.Name] = isInterface
				}
			}
		}
	}
	return types, nil
}

// Implementations 返回名称以 suffix 结尾的非接口类型
func Implementations(types map[string]bool, suffix string) []string {
	var names []string
	for name, isInterface := range types {
		if strings.HasSuffix(name, suffix) && !isInterface {
			names = append(names, name)
		}
	}
	return names
}
