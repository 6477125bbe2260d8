// gen-scripts turns the plain script sources in assets/scripts into the
// registered copies under internal/scripts. Each generated file carries
// the original source with edit tags injected on the exported fields
// (display order plus tooltips lifted from the field comments, which the
// inspector's member descriptors read) followed by the factory,
// serializer and applier glue the engine's script registry needs.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	sourceDir = "assets/scripts"
	outputDir = "internal/scripts"

	// Folded into the content hash so outputs from an older generator
	// regenerate even when their source did not change.
	genVersion = "2"
)

var errUpToDate = errors.New("up to date")

type scriptInfo struct {
	Name   string
	Fields []fieldInfo
}

type fieldInfo struct {
	Name    string
	Type    string
	Prop    string // snake_case key in the serialized property map
	Tooltip string
	Line    int // 1-based source line of the field declaration
}

func main() {
	if _, err := os.Stat(sourceDir); os.IsNotExist(err) {
		fmt.Printf("gen-scripts: no %s directory; nothing to generate\n", sourceDir)
		os.Exit(1)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("gen-scripts: %v\n", err)
		os.Exit(1)
	}
	ensureDocFile()

	files, err := filepath.Glob(filepath.Join(sourceDir, "*.go"))
	if err != nil {
		fmt.Printf("gen-scripts: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("gen-scripts: no script sources in %s\n", sourceDir)
		return
	}

	generated, cached, failed := 0, 0, 0
	for _, file := range files {
		switch err := processScript(file); {
		case errors.Is(err, errUpToDate):
			cached++
		case err != nil:
			fmt.Printf("gen-scripts: %s: %v\n", filepath.Base(file), err)
			failed++
		default:
			fmt.Printf("gen-scripts: %s\n", strings.TrimSuffix(filepath.Base(file), ".go"))
			generated++
		}
	}
	fmt.Printf("gen-scripts: %d generated, %d up to date\n", generated, cached)
	if failed > 0 {
		os.Exit(1)
	}
}

// ensureDocFile writes the package doc once; a hand-edited doc.go is
// left alone.
func ensureDocFile() {
	docPath := filepath.Join(outputDir, "doc.go")
	if _, err := os.Stat(docPath); err == nil {
		return
	}
	doc := `// Package scripts holds the registered copies of the script sources in
// assets/scripts, produced by gen-scripts. Edit the sources, not these.
package scripts
`
	os.WriteFile(docPath, []byte(doc), 0644)
}

func processScript(sourcePath string) error {
	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return err
	}
	outPath := filepath.Join(outputDir, filepath.Base(sourcePath))
	if upToDate(src, outPath) {
		return errUpToDate
	}

	script, err := parseScript(string(src))
	if err != nil {
		return err
	}
	out := emitScript(script, string(src), filepath.Base(sourcePath))
	if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
		return err
	}
	return os.WriteFile(outPath+".hash", []byte(contentHash(src)), 0644)
}

// parseScript reads the first struct declaration out of a script source:
// its exported fields become serialized properties, field comments become
// inspector tooltips.
func parseScript(content string) (*scriptInfo, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, "", content, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var script *scriptInfo
	ast.Inspect(node, func(n ast.Node) bool {
		typeSpec, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		structType, ok := typeSpec.Type.(*ast.StructType)
		if !ok {
			return true
		}
		script = &scriptInfo{Name: typeSpec.Name.Name}
		for _, field := range structType.Fields.List {
			if len(field.Names) == 0 { // embedded
				continue
			}
			for _, name := range field.Names {
				if !unicode.IsUpper(rune(name.Name[0])) {
					continue
				}
				fieldType := typeString(field.Type)
				// Qualified types other than the engine ref are not
				// serializable properties.
				if strings.Contains(fieldType, ".") && fieldType != "engine.GameObjectRef" {
					continue
				}
				if fieldType == "engine.GameObjectRef" {
					fieldType = "GameObjectRef"
				}
				script.Fields = append(script.Fields, fieldInfo{
					Name:    name.Name,
					Type:    fieldType,
					Prop:    toSnakeCase(name.Name),
					Tooltip: fieldTooltip(field),
					Line:    fset.Position(field.Pos()).Line,
				})
			}
		}
		return false // first struct wins
	})

	if script == nil {
		return nil, fmt.Errorf("no struct definition found")
	}
	return script, nil
}

// fieldTooltip lifts the field's comment into a tooltip. Commas are
// stripped because the edit tag format uses them as separators.
func fieldTooltip(field *ast.Field) string {
	text := field.Comment.Text()
	if text == "" {
		text = field.Doc.Text()
	}
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.ReplaceAll(line, ",", "")
}

func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", typeString(t.Len), typeString(t.Elt))
	default:
		return "unknown"
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// emitScript assembles the generated file: header, tagged source, then
// the registration glue.
func emitScript(script *scriptInfo, src, baseName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by gen-scripts from %s/%s; DO NOT EDIT.\n\n", sourceDir, baseName)
	b.WriteString(tagFields(src, script.Fields))
	b.WriteString("\n// --- registration generated from the struct fields above ---\n\n")
	emitRegistration(&b, script)
	emitFactory(&b, script)
	emitSerializer(&b, script)
	emitApplier(&b, script)
	return b.String()
}

// tagFields rewrites the exported field declarations to carry edit tags,
// so the source author never writes tags by hand: declaration order
// becomes display order and the field comment becomes the tooltip.
func tagFields(src string, fields []fieldInfo) string {
	lines := strings.Split(src, "\n")
	for i, f := range fields {
		at := f.Line - 1
		if at < 0 || at >= len(lines) || strings.Contains(lines[at], "`") {
			continue
		}
		lines[at] = tagLine(lines[at], f, i+1)
	}
	return strings.Join(lines, "\n")
}

func tagLine(line string, f fieldInfo, order int) string {
	code, comment := line, ""
	if idx := strings.Index(line, "//"); idx >= 0 {
		code, comment = line[:idx], line[idx:]
	}
	tag := fmt.Sprintf("`edit:\"order=%d\"`", order)
	if f.Tooltip != "" {
		tag = fmt.Sprintf("`edit:\"order=%d,tooltip=%s\"`", order, f.Tooltip)
	}
	out := strings.TrimRight(code, " \t") + " " + tag
	if comment != "" {
		out += " " + comment
	}
	return out
}

func emitRegistration(b *strings.Builder, script *scriptInfo) {
	lower := toSnakeCase(script.Name)
	var refFields []fieldInfo
	for _, f := range script.Fields {
		if f.Type == "GameObjectRef" {
			refFields = append(refFields, f)
		}
	}
	if len(refFields) > 0 {
		fmt.Fprintf(b, "var %sFieldTypes = map[string]string{\n", lower)
		for _, f := range refFields {
			fmt.Fprintf(b, "\t%q: \"GameObjectRef\",\n", f.Prop)
		}
		b.WriteString("}\n\n")
		fmt.Fprintf(b, "func init() {\n\tengine.RegisterScriptWithMetadata(%q, %sFactory, %sSerializer, %sApplier, %sFieldTypes)\n}\n\n",
			script.Name, lower, lower, lower, lower)
		return
	}
	fmt.Fprintf(b, "func init() {\n\tengine.RegisterScriptWithApplier(%q, %sFactory, %sSerializer, %sApplier)\n}\n\n",
		script.Name, lower, lower, lower)
}

func emitFactory(b *strings.Builder, script *scriptInfo) {
	lower := toSnakeCase(script.Name)
	fmt.Fprintf(b, "func %sFactory(props map[string]any) engine.Component {\n", lower)
	fmt.Fprintf(b, "\tscript := &%s{}\n", script.Name)
	for _, f := range script.Fields {
		goType, conv := convFor(f.Type)
		fmt.Fprintf(b, "\tif v, ok := props[%q].(%s); ok {\n", f.Prop, goType)
		fmt.Fprintf(b, "\t\tscript.%s = %s\n\t}\n", f.Name, fmt.Sprintf(conv, "v"))
	}
	b.WriteString("\treturn script\n}\n\n")
}

func emitSerializer(b *strings.Builder, script *scriptInfo) {
	lower := toSnakeCase(script.Name)
	fmt.Fprintf(b, "func %sSerializer(c engine.Component) map[string]any {\n", lower)
	recv := "s"
	if len(script.Fields) == 0 {
		recv = "_"
	}
	fmt.Fprintf(b, "\t%s, ok := c.(*%s)\n\tif !ok {\n\t\treturn nil\n\t}\n", recv, script.Name)
	b.WriteString("\treturn map[string]any{\n")
	for _, f := range script.Fields {
		if f.Type == "GameObjectRef" {
			fmt.Fprintf(b, "\t\t%q: float64(s.%s.UID),\n", f.Prop, f.Name)
		} else {
			fmt.Fprintf(b, "\t\t%q: s.%s,\n", f.Prop, f.Name)
		}
	}
	b.WriteString("\t}\n}\n\n")
}

func emitApplier(b *strings.Builder, script *scriptInfo) {
	lower := toSnakeCase(script.Name)
	fmt.Fprintf(b, "func %sApplier(c engine.Component, propName string, value any) bool {\n", lower)
	recv := "s"
	if len(script.Fields) == 0 {
		recv = "_"
	}
	fmt.Fprintf(b, "\t%s, ok := c.(*%s)\n\tif !ok {\n\t\treturn false\n\t}\n", recv, script.Name)
	b.WriteString("\tswitch propName {\n")
	for _, f := range script.Fields {
		goType, conv := convFor(f.Type)
		fmt.Fprintf(b, "\tcase %q:\n", f.Prop)
		fmt.Fprintf(b, "\t\tif v, ok := value.(%s); ok {\n", goType)
		fmt.Fprintf(b, "\t\t\ts.%s = %s\n\t\t\treturn true\n\t\t}\n", f.Name, fmt.Sprintf(conv, "v"))
	}
	b.WriteString("\t}\n\treturn false\n}\n")
}

// convFor maps a field type to the property-map type it is carried as
// and the conversion back. Numbers always travel as float64, the type
// JSON and the inspector both hand over.
func convFor(fieldType string) (goType, conversion string) {
	switch fieldType {
	case "float32":
		return "float64", "float32(%s)"
	case "float64":
		return "float64", "%s"
	case "int":
		return "float64", "int(%s)"
	case "int32":
		return "float64", "int32(%s)"
	case "int64":
		return "float64", "int64(%s)"
	case "bool":
		return "bool", "%s"
	case "string":
		return "string", "%s"
	case "GameObjectRef":
		return "float64", "engine.GameObjectRef{UID: uint64(%s)}"
	default:
		return "any", "%s"
	}
}

func contentHash(src []byte) string {
	h := sha256.New()
	h.Write([]byte(genVersion))
	h.Write(src)
	return hex.EncodeToString(h.Sum(nil))
}

func upToDate(src []byte, outPath string) bool {
	if _, err := os.Stat(outPath); err != nil {
		return false
	}
	cached, err := os.ReadFile(outPath + ".hash")
	if err != nil {
		return false
	}
	return string(cached) == contentHash(src)
}
