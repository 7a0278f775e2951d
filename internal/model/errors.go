package model

import "errors"

// Sentinel errors for graph and document operations. Callers match them with
// errors.Is; the errors wrapping these add the offending identifiers.
var (
	ErrCompositionNotFound = errors.New("composition not found")
	ErrNodeNotFound        = errors.New("node not found")
	ErrPortNotFound        = errors.New("port not found")
	ErrConnectionNotFound  = errors.New("connection not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrInvalidNodeType     = errors.New("invalid node type")
	ErrParamNotDeclared    = errors.New("parameter not declared")
	ErrParamType           = errors.New("parameter type mismatch")
	ErrEmptyGraph          = errors.New("empty graph")
	ErrImportParse         = errors.New("import parse failure")
	ErrEngineFailure       = errors.New("engine failure")
)
