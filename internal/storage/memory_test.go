package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type InMemoryKVSuite struct {
	suite.Suite
	kv  *InMemoryKV
	ctx context.Context
}

func TestInMemoryKVSuite(t *testing.T) {
	suite.Run(t, new(InMemoryKVSuite))
}

func (s *InMemoryKVSuite) SetupTest() {
	s.kv = NewInMemoryKV()
	s.ctx = context.Background()
}

func (s *InMemoryKVSuite) TestGetMissingKey() {
	_, err := s.kv.Get(s.ctx, "missing")
	s.Require().ErrorIs(err, ErrNotFound)

	ok, err := s.kv.Has(s.ctx, "missing")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *InMemoryKVSuite) TestPutGetRoundTrip() {
	s.Require().NoError(s.kv.Put(s.ctx, "unit:1", []byte(`{"id":1}`)))

	value, err := s.kv.Get(s.ctx, "unit:1")
	s.Require().NoError(err)
	s.Equal([]byte(`{"id":1}`), value)

	ok, err := s.kv.Has(s.ctx, "unit:1")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *InMemoryKVSuite) TestPutOverwrites() {
	s.Require().NoError(s.kv.Put(s.ctx, "counter", []byte("1")))
	s.Require().NoError(s.kv.Put(s.ctx, "counter", []byte("2")))

	value, err := s.kv.Get(s.ctx, "counter")
	s.Require().NoError(err)
	s.Equal([]byte("2"), value)
}

func (s *InMemoryKVSuite) TestDelete() {
	s.Require().NoError(s.kv.Put(s.ctx, "k", []byte("v")))
	s.Require().NoError(s.kv.Delete(s.ctx, "k"))

	_, err := s.kv.Get(s.ctx, "k")
	s.Require().ErrorIs(err, ErrNotFound)

	// Deleting a missing key is not an error.
	s.Require().NoError(s.kv.Delete(s.ctx, "k"))
}

func (s *InMemoryKVSuite) TestGetReturnsCopy() {
	s.Require().NoError(s.kv.Put(s.ctx, "k", []byte("abc")))

	value, err := s.kv.Get(s.ctx, "k")
	s.Require().NoError(err)
	value[0] = 'z'

	again, err := s.kv.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("abc"), again)
}
