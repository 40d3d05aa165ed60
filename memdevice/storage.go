package memdevice

import (
	"encoding/binary"
	"errors"
)

// A Storage keeps the data held by the simulated memory device.
//
// The storage allocates memory in fixed-size units on first touch, so a
// sparsely accessed device does not pay for its full capacity.
type Storage struct {
	unitSize uint64
	capacity uint64
	data     map[uint64][]byte
}

// NewStorage creates a storage object with the given capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	return &Storage{
		unitSize: 64,
		capacity: capacity,
		data:     make(map[uint64][]byte),
	}
}

// Capacity returns the capacity of the storage in bytes.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

func (s *Storage) unit(address uint64) ([]byte, error) {
	if address >= s.capacity {
		return nil, errors.New("memdevice: address beyond storage capacity")
	}

	baseAddr := address - address%s.unitSize
	unit, ok := s.data[baseAddr]
	if !ok {
		unit = make([]byte, s.unitSize)
		s.data[baseAddr] = unit
	}

	return unit, nil
}

// Read returns length bytes starting at the given address.
func (s *Storage) Read(address, length uint64) ([]byte, error) {
	out := make([]byte, length)

	for offset := uint64(0); offset < length; {
		curr := address + offset
		unit, err := s.unit(curr)
		if err != nil {
			return nil, err
		}

		inUnit := curr % s.unitSize
		n := copy(out[offset:], unit[inUnit:])
		offset += uint64(n)
	}

	return out, nil
}

// Write stores data starting at the given address.
func (s *Storage) Write(address uint64, data []byte) error {
	for offset := uint64(0); offset < uint64(len(data)); {
		curr := address + offset
		unit, err := s.unit(curr)
		if err != nil {
			return err
		}

		inUnit := curr % s.unitSize
		n := copy(unit[inUnit:], data[offset:])
		offset += uint64(n)
	}

	return nil
}

// ReadWord returns the little-endian 16-bit word at the given byte address.
func (s *Storage) ReadWord(address uint64) (uint16, error) {
	data, err := s.Read(address, 2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(data), nil
}

// WriteWord stores a 16-bit word little-endian at the given byte address.
func (s *Storage) WriteWord(address uint64, word uint16) error {
	data := make([]byte, 2)
	binary.LittleEndian.PutUint16(data, word)

	return s.Write(address, data)
}
