// internal/poller/modbus/client_test.go
package modbus

import (
	"errors"
	"testing"

	"github.com/goburrow/modbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	payload []byte
	err     error

	gotAddr uint16
	gotQty  uint16
	calls   int
}

func (f *fakeReader) ReadInputRegisters(address, quantity uint16) ([]byte, error) {
	f.calls++
	f.gotAddr, f.gotQty = address, quantity
	return f.payload, f.err
}

func TestReadInputRegisters_UnpacksBigEndian(t *testing.T) {
	fr := &fakeReader{payload: []byte{0x00, 0x00, 0x67, 0x00}}
	c := &Client{client: fr}

	regs, err := c.ReadInputRegisters(3014, 2)
	require.NoError(t, err)

	assert.Equal(t, []uint16{0, 26368}, regs)
	assert.Equal(t, uint16(3014), fr.gotAddr)
	assert.Equal(t, uint16(2), fr.gotQty)
}

func TestReadInputRegisters_OddByteCount(t *testing.T) {
	c := &Client{client: &fakeReader{payload: []byte{0x01, 0x75, 0x00}}}

	_, err := c.ReadInputRegisters(3014, 1)
	assert.Error(t, err)
}

func TestReadInputRegisters_PropagatesException(t *testing.T) {
	exc := &modbus.ModbusError{FunctionCode: 0x84, ExceptionCode: modbus.ExceptionCodeIllegalDataAddress}
	c := &Client{client: &fakeReader{err: exc}}

	_, err := c.ReadInputRegisters(9999, 1)

	var me *modbus.ModbusError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, byte(modbus.ExceptionCodeIllegalDataAddress), me.ExceptionCode)
}

func TestReadInputRegisters_ZeroQuantity(t *testing.T) {
	fr := &fakeReader{}
	c := &Client{client: fr}

	regs, err := c.ReadInputRegisters(3000, 0)
	require.NoError(t, err)
	assert.Nil(t, regs)
	assert.Zero(t, fr.calls)
}

func TestReadInputRegisters_NotConnected(t *testing.T) {
	var c *Client
	_, err := c.ReadInputRegisters(3000, 1)
	assert.Error(t, err)
}

func TestClose_NilSafe(t *testing.T) {
	var c *Client
	assert.NoError(t, c.Close())
	assert.NoError(t, (&Client{}).Close())
}

func TestNew_RequiresPort(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
