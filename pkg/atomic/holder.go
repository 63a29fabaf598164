package atomic

import "github.com/dmitrymomot/commons/pkg/container"

var (
	_ container.Holder[any]   = (*Reference[any])(nil)
	_ container.BooleanHolder = (*Boolean)(nil)
	_ container.IntegerHolder = (*Integer)(nil)
)
