// pre_processor.go implements the Oxy WGSL shader pre-processor. It scans shader source for
// @oxy: annotations, replaces includes with registered chunk source, expands group annotations
// into @group/@binding declarations, and collects those declarations so the pipeline builder
// can check them against its bind group layouts.
package shader

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// chunks maps include names to WGSL source. Chunk source may itself contain annotations.
	chunks map[string]string

	// declarations accumulates group annotations during a Process call.
	declarations []Annotation
}

// PreProcessor expands @oxy: annotations in WGSL source.
type PreProcessor interface {
	// Process expands every annotation in source. Includes are resolved recursively and each
	// chunk is injected at most once. Two group annotations may not share a group and binding.
	// The declarations list is reset at the start of each call.
	//
	// Parameters:
	//   - source: the raw WGSL shader source code containing annotations
	//
	// Returns:
	//   - string: the processed WGSL source
	//   - error: an error if any annotation is malformed, names an unknown chunk or repeats a binding
	Process(source string) (string, error)

	// Declarations returns the group annotations collected during the most recent Process call,
	// in source order.
	//
	// Returns:
	//   - []Annotation: the declarations collected during the last Process call
	Declarations() []Annotation

	// Chunks returns the registered chunk names, sorted.
	Chunks() []string
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the given chunks registered.
//
// Parameters:
//   - options: functional options registering chunks
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor(options ...PreProcessorBuilderOption) PreProcessor {
	p := &preProcessor{chunks: make(map[string]string)}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]

	included := make(map[string]bool)
	bound := make(map[[2]int]string)
	out, err := p.expand(source, "", included, bound)
	if err != nil {
		return "", err
	}
	return strings.Join(out, "\n"), nil
}

// expand processes one source text. origin names the chunk being expanded, empty for the root.
func (p *preProcessor) expand(source, origin string, included map[string]bool, bound map[[2]int]string) ([]string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return nil, withOrigin(origin, err)
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			if included[a.Chunk] {
				continue
			}
			chunk, ok := p.chunks[a.Chunk]
			if !ok {
				return nil, withOrigin(origin, fmt.Errorf("line %d: unknown @oxy include chunk %q", a.Line, a.Chunk))
			}
			included[a.Chunk] = true
			expanded, err := p.expand(chunk, a.Chunk, included, bound)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		case AnnotationTypeBindingGroup:
			key := [2]int{a.Group, a.Binding}
			if prev, ok := bound[key]; ok {
				return nil, withOrigin(origin, fmt.Errorf("line %d: group %d binding %d already declared by %q", a.Line, a.Group, a.Binding, prev))
			}
			bound[key] = a.Name
			out = append(out, a.declaration())
			p.declarations = append(p.declarations, *a)
		}
	}
	return out, nil
}

func withOrigin(origin string, err error) error {
	if origin == "" {
		return err
	}
	return fmt.Errorf("chunk %q: %w", origin, err)
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}

func (p *preProcessor) Chunks() []string {
	return slices.Sorted(maps.Keys(p.chunks))
}

// GroupCount returns one more than the highest group index declared, which is the number of bind
// group layouts a pipeline using the declarations needs.
//
// Parameters:
//   - decls: declarations from Process
//
// Returns:
//   - int: the required bind group layout count
func GroupCount(decls []Annotation) int {
	n := 0
	for _, d := range decls {
		n = max(n, d.Group+1)
	}
	return n
}
