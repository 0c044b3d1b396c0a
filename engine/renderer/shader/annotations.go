// annotations.go defines the annotation types and parser for the Oxy WGSL pre-processor.
// Annotations are single-line WGSL comments prefixed with @oxy: that inject shared source
// chunks and generate @group/@binding declarations.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies an Oxy annotation within a WGSL comment line.
// Every annotation must appear on a line beginning with "//" followed by this prefix.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the source of a registered chunk at the annotation site.
	// Chunks may include other chunks; each chunk is injected at most once per Process call.
	//
	// Syntax: //@oxy:include <chunk>
	//
	// Example: //@oxy:include frame
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a WGSL @group/@binding variable declaration and
	// records it in the PreProcessor's declarations list.
	//
	// Syntax: //@oxy:group <group> <binding> <kind> <var_name> <type>
	//
	// Examples:
	//   //@oxy:group 0 0 uniform frame Frame
	//   //@oxy:group 2 0 texture surface_texture texture_2d<f32>
	//   //@oxy:group 2 1 sampler surface_sampler sampler
	AnnotationTypeBindingGroup AnnotationType = "group"
)

// BindingKind is the resource kind of a group annotation.
type BindingKind string

const (
	// BindingKindUniform declares a var<uniform> buffer binding.
	BindingKindUniform BindingKind = "uniform"
	// BindingKindTexture declares a sampled texture binding.
	BindingKindTexture BindingKind = "texture"
	// BindingKindSampler declares a sampler binding.
	BindingKindSampler BindingKind = "sampler"
)

var validBindingKinds = []BindingKind{BindingKindUniform, BindingKindTexture, BindingKindSampler}

// Annotation represents a single parsed @oxy: annotation from a WGSL shader source line.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Chunk is the included chunk name. Empty for group annotations.
	Chunk string

	// Kind, Name and WGSLType describe a group annotation's binding.
	Kind     BindingKind
	Name     string
	WGSLType string

	// Line is the 1-based line number in the source being processed. Used for error reporting.
	Line int

	// Group and Binding are the indices of a group annotation.
	Group   int
	Binding int
}

// declaration renders the WGSL variable declaration for a group annotation.
func (a Annotation) declaration() string {
	space := "var"
	if a.Kind == BindingKindUniform {
		space = "var<uniform>"
	}
	return fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;", a.Group, a.Binding, space, a.Name, a.WGSLType)
}

// parseAnnotation attempts to parse a single line of WGSL source as an @oxy: annotation.
// Returns nil with no error for lines that do not contain the annotation prefix.
//
// Parameters:
//   - line: the raw WGSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, "//")
	if !ok {
		return nil, nil
	}
	_, after, ok := strings.Cut(strings.TrimSpace(rest), annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case annotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		return &Annotation{Type: annotationTypeInclude, Chunk: args[1], Line: lineNum}, nil
	case AnnotationTypeBindingGroup:
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @oxy group annotation requires exactly five arguments (group, binding, kind, name, type)", lineNum)
		}
		group, err := strconv.Atoi(args[1])
		if err != nil || group < 0 {
			return nil, fmt.Errorf("line %d: invalid group number %q in @oxy group annotation", lineNum, args[1])
		}
		binding, err := strconv.Atoi(args[2])
		if err != nil || binding < 0 {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @oxy group annotation", lineNum, args[2])
		}
		kind := BindingKind(args[3])
		if !slices.Contains(validBindingKinds, kind) {
			return nil, fmt.Errorf("line %d: unknown binding kind %q in @oxy group annotation", lineNum, args[3])
		}
		return &Annotation{
			Type:     AnnotationTypeBindingGroup,
			Kind:     kind,
			Name:     args[4],
			WGSLType: args[5],
			Line:     lineNum,
			Group:    group,
			Binding:  binding,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}
