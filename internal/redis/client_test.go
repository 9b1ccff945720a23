package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestNewClient() {
	testCases := []struct {
		name     string
		endpoint func() string
	}{
		{"host and port", func() string { return s.mr.Addr() }},
		{"url", func() string { return "redis://" + s.mr.Addr() + "/0" }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := redis.NewClient(tc.endpoint(), &redis.Options{PoolSize: 2})
			s.Require().NoError(err)
			defer func() { _ = client.Close() }()

			s.NoError(client.Ping(context.Background()).Err())
		})
	}
}

func (s *ClientTestSuite) TestNewClientErrors() {
	_, err := redis.NewClient("", nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = redis.NewClient("http://"+s.mr.Addr(), nil)
	s.True(errors.IsInvalidArgument(err))
}
