package schemagen

import "fmt"

// Validate checks the ownership invariants of the tree: no nil properties,
// and every node owned by exactly one parent (which also rules out cycles).
// Schema semantics are left to the generation service.
func (d *Definition) Validate() error {
	if d == nil {
		return nil
	}
	return d.validate("$", make(map[*Definition]string))
}

func (d *Definition) validate(path string, seen map[*Definition]string) error {
	if prev, ok := seen[d]; ok {
		return &Error{Kind: KindMisuse, Message: fmt.Sprintf("definition at %s is already used at %s", path, prev)}
	}
	seen[d] = path

	for name, p := range d.Properties {
		child := path + ".properties." + name
		if p == nil {
			return &Error{Kind: KindMisuse, Message: fmt.Sprintf("nil definition at %s", child)}
		}
		if err := p.validate(child, seen); err != nil {
			return err
		}
	}
	if d.Items != nil {
		return d.Items.validate(path+".items", seen)
	}
	return nil
}
