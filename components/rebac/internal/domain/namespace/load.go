package namespace

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML shape for a single object type's
// definition. One file may declare multiple types.
type document struct {
	Types []typeDocument `yaml:"types"`
}

type typeDocument struct {
	Type        string              `yaml:"type"`
	Relations   []string            `yaml:"relations"`
	CrossTenant []string            `yaml:"cross_tenant_relations"`
	Permissions map[string]yaml.Node `yaml:"permissions"`
}

// Load parses a YAML namespace document and returns the TypeDefs it
// declares. It does not validate acyclicity across types — call
// Registry.ReplaceAll with the result to do that atomically.
func Load(r io.Reader) ([]TypeDef, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("namespace: decode: %w", err)
	}

	defs := make([]TypeDef, 0, len(doc.Types))

	for _, td := range doc.Types {
		def := TypeDef{
			ObjectType:           td.Type,
			DirectRelations:      map[string]struct{}{},
			Permissions:          map[string]Rewrite{},
			CrossTenantRelations: map[string]struct{}{},
		}

		for _, rel := range td.Relations {
			def.DirectRelations[rel] = struct{}{}
		}

		for _, rel := range td.CrossTenant {
			def.CrossTenantRelations[rel] = struct{}{}
		}

		for name, node := range td.Permissions {
			rw, err := parseRewriteNode(&node)
			if err != nil {
				return nil, fmt.Errorf("namespace: type %s permission %s: %w", td.Type, name, err)
			}

			def.Permissions[name] = rw
		}

		defs = append(defs, def)
	}

	return defs, nil
}

// rewriteDocument is the tagged-union shape a permission's YAML value
// parses into. Exactly one field should be set; this mirrors the
// Rewrite algebra one-to-one.
type rewriteDocument struct {
	This            bool               `yaml:"this"`
	ComputedUserset string             `yaml:"computed_userset"`
	TupleToUserset  *tupleToUsersetDoc `yaml:"tuple_to_userset"`
	Union           []yaml.Node        `yaml:"union"`
	Intersection    []yaml.Node        `yaml:"intersection"`
	Exclusion       *exclusionDoc      `yaml:"exclusion"`
}

type tupleToUsersetDoc struct {
	Tupleset        string `yaml:"tupleset"`
	ComputedUserset string `yaml:"computed_userset"`
	TuplesetType    string `yaml:"tupleset_type"`
}

type exclusionDoc struct {
	Included yaml.Node `yaml:"included"`
	Excluded yaml.Node `yaml:"excluded"`
}

func parseRewriteNode(node *yaml.Node) (Rewrite, error) {
	// A bare string permission value is shorthand for
	// `computed_userset: <value>` when it names another permission, or
	// `this` when the literal value is "this".
	if node.Kind == yaml.ScalarNode {
		if node.Value == "this" {
			return This(), nil
		}

		return ComputedUsersetOf(node.Value), nil
	}

	var doc rewriteDocument
	if err := node.Decode(&doc); err != nil {
		return Rewrite{}, fmt.Errorf("decode rewrite: %w", err)
	}

	switch {
	case doc.This:
		return This(), nil
	case doc.ComputedUserset != "":
		return ComputedUsersetOf(doc.ComputedUserset), nil
	case doc.TupleToUserset != nil:
		return TupleToUsersetOf(doc.TupleToUserset.Tupleset, doc.TupleToUserset.ComputedUserset, doc.TupleToUserset.TuplesetType), nil
	case len(doc.Union) > 0:
		children, err := parseRewriteNodes(doc.Union)
		if err != nil {
			return Rewrite{}, err
		}

		return UnionOf(children...), nil
	case len(doc.Intersection) > 0:
		children, err := parseRewriteNodes(doc.Intersection)
		if err != nil {
			return Rewrite{}, err
		}

		return IntersectionOf(children...), nil
	case doc.Exclusion != nil:
		included, err := parseRewriteNode(&doc.Exclusion.Included)
		if err != nil {
			return Rewrite{}, err
		}

		excluded, err := parseRewriteNode(&doc.Exclusion.Excluded)
		if err != nil {
			return Rewrite{}, err
		}

		return ExclusionOf(included, excluded), nil
	default:
		return Rewrite{}, fmt.Errorf("empty or unrecognized rewrite node")
	}
}

func parseRewriteNodes(nodes []yaml.Node) ([]Rewrite, error) {
	out := make([]Rewrite, 0, len(nodes))

	for i := range nodes {
		rw, err := parseRewriteNode(&nodes[i])
		if err != nil {
			return nil, err
		}

		out = append(out, rw)
	}

	return out, nil
}
