// Package ipv4 counts the addresses in an IPv4 range.
package ipv4

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/katas/translate"
)

var f = translate.From

var (
	ErrComponentCount  = translate.Error("address requires four components")
	ErrComponentRange  = translate.Error("component out of range 0..255")
	ErrComponentNumber = translate.Error("component is not a number")
)

// ErrAddress indicates the address that could not be parsed.
type ErrAddress struct {
	Address string
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("address '%v' %v", err.Address, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}

// ParseAddress parses a dotted-quad address into its big-endian 32-bit value.
func ParseAddress(address string) (value uint32, err error) {
	defer func() {
		if err != nil {
			value = 0
			err = &ErrAddress{Address: address, Err: err}
		}
	}()

	parts := strings.Split(address, ".")
	if len(parts) != 4 {
		err = ErrComponentCount
		return
	}

	for _, part := range parts {
		var octet uint64
		octet, err = strconv.ParseUint(part, 10, 8)
		if errors.Is(err, strconv.ErrRange) {
			err = ErrComponentRange
			return
		}
		if err != nil {
			err = ErrComponentNumber
			return
		}
		value = (value << 8) | uint32(octet)
	}

	return
}

// IpsBetween returns the number of addresses from start up to, but not
// including, end. The count wraps modulo 2^32 when end is before start.
func IpsBetween(start, end string) (count uint32, err error) {
	first, err := ParseAddress(start)
	if err != nil {
		return
	}

	last, err := ParseAddress(end)
	if err != nil {
		return
	}

	count = last - first
	return
}
