package scene

import (
	"fmt"
	"reflect"
)

// Walk visits root and its descendants depth-first in document order.
// Returning false from fn stops the walk.
func Walk(root Object, fn func(Object) bool) bool {
	if isNil(root) {
		return true
	}
	if !fn(root) {
		return false
	}
	for _, c := range root.Children() {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// FindByKey returns the object under root carrying key.
func FindByKey(root Object, key string) (Object, error) {
	found := FindByPredicate(root, func(o Object) bool { return o.Key() == key })
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	return found, nil
}

// FindByKeyAs is FindByKey with a concrete type check.
func FindByKeyAs[T Object](root Object, key string) (T, error) {
	var zero T
	found, err := FindByKey(root, key)
	if err != nil {
		return zero, err
	}
	typed, ok := found.(T)
	if !ok {
		return zero, &WrongTypeError{
			Key:  key,
			Want: reflect.TypeFor[T]().String(),
			Got:  reflect.TypeOf(found).String(),
		}
	}
	return typed, nil
}

// FindByPredicate returns the first object under root matching pred, or nil.
func FindByPredicate(root Object, pred func(Object) bool) Object {
	var found Object
	Walk(root, func(o Object) bool {
		if pred(o) {
			found = o
			return false
		}
		return true
	})
	return found
}

// FindAll returns every object under root matching pred.
func FindAll(root Object, pred func(Object) bool) []Object {
	var out []Object
	Walk(root, func(o Object) bool {
		if pred(o) {
			out = append(out, o)
		}
		return true
	})
	return out
}

// FindAllOf returns every object of type T under root.
func FindAllOf[T Object](root Object) []T {
	var out []T
	Walk(root, func(o Object) bool {
		if typed, ok := o.(T); ok {
			out = append(out, typed)
		}
		return true
	})
	return out
}

// Ancestor returns the nearest strict ancestor of obj of type T.
func Ancestor[T any](obj Object) (T, bool) {
	var zero T
	if isNil(obj) {
		return zero, false
	}
	for cur := obj.Parent(); cur != nil; cur = cur.Parent() {
		if typed, ok := cur.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// Root returns the top of obj's tree.
func Root(obj Object) Object {
	cur := obj
	for cur.Parent() != nil {
		cur = cur.Parent()
	}
	return cur
}
