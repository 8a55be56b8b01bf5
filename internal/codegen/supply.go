package codegen

import "fmt"

// NameSupply hands out unique synthesized identifiers during one codegen
// invocation. A fresh supply is created per module and discarded afterwards;
// it must not be shared across modules. The zero value is ready to use.
type NameSupply struct {
	next int
}

// Fresh returns a new identifier built from prefix and a counter that is
// unique within this supply.
func (s *NameSupply) Fresh(prefix string) string {
	n := s.next
	s.next++
	return fmt.Sprintf("%s_%d", prefix, n)
}

// Count reports how many names this supply has issued.
func (s *NameSupply) Count() int { return s.next }
