package main

import (
	"fmt"

	"github.com/mgnsk/linkedlist/list"
)

func main() {
	l := list.New[string](list.WithCapacity(4))

	l.PushBack("b")
	l.PushBack("c")
	l.PushFront("a")

	// Mutate the last value in place.
	if p := l.BackPtr(); p != nil {
		*p = "C"
	}

	for v := range l.Backward() {
		fmt.Println(v)
	}

	// Draining hands each value to the caller and leaves the list empty.
	for v := range l.Drain().All() {
		fmt.Println("drained", v)
	}

	fmt.Println(l.Len(), l)
}
