package cssinline

import (
	"fmt"
)

func (r StyleRule) String() string {
	return fmt.Sprintf("%s{%s}", r.Selector, r.Block)
}
