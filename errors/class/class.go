package class

import (
	"errors"
	"fmt"
	"sync"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (2 << (indexBitSize - 1)) - 1
	maxMinorValue = (2 << (minorBitSize - 1)) - 1
	maxMajorValue = (2 << (majorBitSize - 1)) - 1
)

// Class is the error classification model. It is composed of the major, minor
// and index subclassifications. Each subclassification is a different length
// number, where major is composed of 7, minor of 10 and index of 15 bits.
// Major is a global scope division like 'Encoding' or 'Model'. Minor divides
// the major into subclasses like the marshal process of the encoding. Index is
// the most precise classification.
type Class uint32

// Major gets the major subclassification of the class.
func (c Class) Major() Major {
	return Major(c >> (minorBitSize + indexBitSize))
}

// Minor gets the minor subclassification of the class.
func (c Class) Minor() Minor {
	return Minor{major: c.Major(), value: uint16(c>>indexBitSize) & maxMinorValue}
}

// IsMajor checks if the given class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// IsMinor checks if the given class is composed of provided minor 'm'.
func (c Class) IsMinor(m Minor) bool {
	return c.Minor() == m
}

func (c Class) String() string {
	registry.Lock()
	defer registry.Unlock()
	name, ok := registry.classNames[c]
	if !ok {
		return fmt.Sprintf("Class(%d)", uint32(c))
	}
	return name
}

// Major is a 7 bit top level error classification.
type Major uint8

// InBounds checks if the major value is not greater than the allowed size.
func (m Major) InBounds() bool {
	return (uint16(m)>>majorBitSize) == 0 && m != 0
}

// Name returns the major registered name.
func (m Major) Name() string {
	registry.Lock()
	defer registry.Unlock()
	return registry.majorNames[m]
}

// MustRegisterMinor registers the minor classification for given major 'm'
// with a unique 'name'. Panics when the major is invalid.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// RegisterMinor registers the minor classification for given major 'm'.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if !m.InBounds() {
		return Minor{}, errors.New("class: major out of bounds")
	}
	registry.Lock()
	defer registry.Unlock()

	next := registry.minorCount[m] + 1
	if next > maxMinorValue {
		return Minor{}, errors.New("class: minor out of bounds")
	}
	registry.minorCount[m] = next

	minor := Minor{major: m, value: next}
	registry.minorNames[minor] = name
	registry.classNames[minor.Class()] = registry.majorNames[m] + name
	return minor, nil
}

// Minor is a 10 bit minor error subclassification scoped by its major.
type Minor struct {
	major Major
	value uint16
}

// Major gets the minor's major classification.
func (m Minor) Major() Major {
	return m.major
}

// Name returns the minor registered name.
func (m Minor) Name() string {
	registry.Lock()
	defer registry.Unlock()
	return registry.minorNames[m]
}

// Class composes the minor into a class with a zero index value.
func (m Minor) Class() Class {
	return Class(uint32(m.major)<<(minorBitSize+indexBitSize) | uint32(m.value)<<indexBitSize)
}

// MustRegisterIndex registers the index classification for given minor 'm'
// with a unique 'name'. Panics on registration failure.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	index, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return index
}

// RegisterIndex registers the index classification for given minor 'm'.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	if m.value == 0 {
		return Index{}, errors.New("class: minor not registered")
	}
	registry.Lock()
	defer registry.Unlock()

	next := registry.indexCount[m] + 1
	if next > maxIndexValue {
		return Index{}, errors.New("class: index out of bounds")
	}
	registry.indexCount[m] = next

	index := Index{minor: m, value: next}
	registry.classNames[index.Class()] = registry.majorNames[m.major] + registry.minorNames[m] + name
	return index, nil
}

// Index is a 15 bit error classification unique within its major and minor.
type Index struct {
	minor Minor
	value uint16
}

// Class composes the complete class value for given index.
func (i Index) Class() Class {
	return i.minor.Class() | Class(i.value)
}

// MustRegisterMajor registers a new major error classification with a unique
// 'name'. Panics when no more majors may be registered.
func MustRegisterMajor(name string, description ...string) Major {
	major, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return major
}

// RegisterMajor registers a new major error classification.
func RegisterMajor(name string, description ...string) (Major, error) {
	registry.Lock()
	defer registry.Unlock()

	if int(registry.majorCount)+1 > maxMajorValue {
		return Major(0), errors.New("class: major out of bounds")
	}
	registry.majorCount++

	major := Major(registry.majorCount)
	registry.majorNames[major] = name
	registry.minorCount[major] = 0
	return major, nil
}

var registry = struct {
	sync.Mutex
	majorCount uint8
	majorNames map[Major]string
	minorCount map[Major]uint16
	minorNames map[Minor]string
	indexCount map[Minor]uint16
	classNames map[Class]string
}{
	majorNames: make(map[Major]string),
	minorCount: make(map[Major]uint16),
	minorNames: make(map[Minor]string),
	indexCount: make(map[Minor]uint16),
	classNames: make(map[Class]string),
}

func init() {
	registerClasses()
}

func registerClasses() {
	registerInternalClasses()
	registerConfigClasses()
	registerModelClasses()
	registerEncodingClasses()
}
