/*
 * node.go, part of chemimport.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemjson

import "fmt"

//Node kinds. They are plain strings, shared with other programs reading the
//trees, so unknown kinds are carried around without complaint.
const (
	KindMolecule          = "mircmd:chemistry:molecule"
	KindAtomicCoordinates = "mircmd:chemistry:atomic_coordinates"
	KindVolumeCube        = "mircmd:chemistry:volume_cube"
	KindUnex              = "mircmd:chemistry:unex"
)

//Node is a labeled tree node. Data holds the serialized payload that
//corresponds to Kind (or nothing, for pure grouping nodes).
type Node struct {
	Name     string `json:"name"`
	Kind     string `json:"type"`
	Data     []byte `json:"data"`
	Children []Node `json:"children"`
}

//NewNode builds a node named name of the given kind, with payload serialized
//into its Data. A nil payload gives an empty Data.
func NewNode(name, kind string, payload any, children ...Node) (Node, error) {
	n := Node{Name: name, Kind: kind, Data: []byte{}, Children: children}
	if n.Children == nil {
		n.Children = []Node{}
	}
	if payload == nil {
		return n, nil
	}
	var err error
	n.Data, err = Encode(payload)
	if err != nil {
		return Node{}, fmt.Errorf("failed to serialize %s payload for %q: %w", kind, name, err)
	}
	return n, nil
}

//Coordinates decodes the payload of an atomic coordinates node.
func (N *Node) Coordinates() (*AtomicCoordinates, error) {
	if N.Kind != KindAtomicCoordinates {
		return nil, fmt.Errorf("node %q is of kind %s, not atomic coordinates", N.Name, N.Kind)
	}
	c := new(AtomicCoordinates)
	if err := Decode(N.Data, c); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

//Molecule decodes the payload of a molecule node. Grouping molecule nodes,
//which carry no payload, give a nil Molecule and no error.
func (N *Node) Molecule() (*Molecule, error) {
	if N.Kind != KindMolecule {
		return nil, fmt.Errorf("node %q is of kind %s, not molecule", N.Name, N.Kind)
	}
	if len(N.Data) == 0 {
		return nil, nil
	}
	m := new(Molecule)
	if err := Decode(N.Data, m); err != nil {
		return nil, err
	}
	return m, nil
}

//VolumeCube decodes the payload of a volume cube node.
func (N *Node) VolumeCube() (*VolumeCube, error) {
	if N.Kind != KindVolumeCube {
		return nil, fmt.Errorf("node %q is of kind %s, not volume cube", N.Name, N.Kind)
	}
	v := new(VolumeCube)
	if err := Decode(N.Data, v); err != nil {
		return nil, err
	}
	return v, nil
}

//Walk calls fn for N and all its descendants, depth first, in order.
//depth is 0 for N. If fn returns an error the walk stops and the error is returned.
func (N *Node) Walk(fn func(depth int, n *Node) error) error {
	return N.walk(0, fn)
}

func (N *Node) walk(depth int, fn func(int, *Node) error) error {
	if err := fn(depth, N); err != nil {
		return err
	}
	for i := range N.Children {
		if err := N.Children[i].walk(depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

//Find returns, in walk order, all the nodes in the tree with the given kind.
func (N *Node) Find(kind string) []*Node {
	var ret []*Node
	N.Walk(func(_ int, n *Node) error {
		if n.Kind == kind {
			ret = append(ret, n)
		}
		return nil
	})
	return ret
}
