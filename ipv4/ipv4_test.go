package ipv4

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIpsBetween(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		start string
		end   string
		count uint32
	}){
		{"10.0.0.0", "10.0.0.50", 50},
		{"20.0.0.10", "20.0.1.0", 246},
		{"10.0.0.0", "10.0.1.0", 256},
		{"0.0.0.0", "255.255.255.255", 0xffffffff},
		{"1.2.3.4", "1.2.3.4", 0},
		{"10.0.0.1", "10.0.0.0", 0xffffffff},
	}

	for _, entry := range table {
		count, err := IpsBetween(entry.start, entry.end)
		assert.NoError(err, entry.start)
		assert.Equal(entry.count, count, entry.start)
	}
}

func TestParseAddress(t *testing.T) {
	assert := assert.New(t)

	value, err := ParseAddress("192.168.1.254")
	assert.NoError(err)
	assert.Equal(uint32(0xc0a801fe), value)

	value, err = ParseAddress("010.000.000.001")
	assert.NoError(err)
	assert.Equal(uint32(0x0a000001), value)
}

func TestParseAddressErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		address string
		err     error
	}){
		{"", ErrComponentCount},
		{"1.2.3", ErrComponentCount},
		{"1.2.3.4.5", ErrComponentCount},
		{"1.2.3.256", ErrComponentRange},
		{"1.2.3.99999", ErrComponentRange},
		{"1.2.3.x", ErrComponentNumber},
		{"1..3.4", ErrComponentNumber},
		{"1.2.3.-4", ErrComponentNumber},
		{"1.2.3.+4", ErrComponentNumber},
	}

	for _, entry := range table {
		value, err := ParseAddress(entry.address)
		assert.ErrorIs(err, entry.err, entry.address)
		assert.Equal(uint32(0), value, entry.address)

		var addrErr *ErrAddress
		if assert.ErrorAs(err, &addrErr, entry.address) {
			assert.Equal(entry.address, addrErr.Address)
		}
	}

	_, err := IpsBetween("10.0.0.0", "10.0.0")
	assert.ErrorIs(err, ErrComponentCount)
	_, err = IpsBetween("10.0.0.300", "10.0.0.1")
	assert.ErrorIs(err, ErrComponentRange)
}

func FuzzParseAddress(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0x0a000032))
	f.Add(uint32(0xffffffff))

	f.Fuzz(func(t *testing.T, value uint32) {
		assert := assert.New(t)

		text := fmt.Sprintf("%d.%d.%d.%d", value>>24, (value>>16)&0xff, (value>>8)&0xff, value&0xff)
		got, err := ParseAddress(text)
		assert.NoError(err)
		assert.Equal(value, got)

		count, err := IpsBetween("0.0.0.0", text)
		assert.NoError(err)
		assert.Equal(value, count)
	})
}
