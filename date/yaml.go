// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler using the compact form produced
// by Date.String.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler accepting any of the forms
// understood by Parse.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var val string
	if err := node.Decode(&val); err != nil {
		return err
	}
	return d.Parse(val)
}
