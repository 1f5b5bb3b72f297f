package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeAtom NodeType = 128
	nodeTypeList NodeType = 256

	NodeTypeInt    = nodeTypeAtom | 1
	NodeTypeSymbol = nodeTypeAtom | 2
	NodeTypeBool   = nodeTypeAtom | 4
	NodeTypeDot    = nodeTypeAtom | 8

	NodeTypeEmpty = nodeTypeList | 1
	NodeTypePair  = nodeTypeList | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:    "int",
	NodeTypeSymbol: "symbol",
	NodeTypeBool:   "bool",
	NodeTypeDot:    "dot",
	NodeTypeEmpty:  "empty",
	NodeTypePair:   "pair",
}
