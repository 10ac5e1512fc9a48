package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FlexIDSuite struct {
	suite.Suite
}

func TestFlexIDSuite(t *testing.T) {
	suite.Run(t, new(FlexIDSuite))
}

func (s *FlexIDSuite) decode(raw string) (FlexID, error) {
	var id FlexID
	err := json.Unmarshal([]byte(raw), &id)
	return id, err
}

func (s *FlexIDSuite) TestString() {
	id, err := s.decode(`"8478402"`)
	s.Require().NoError(err)
	s.Equal(FlexID("8478402"), id)
}

func (s *FlexIDSuite) TestNumber() {
	id, err := s.decode(`8478402`)
	s.Require().NoError(err)
	s.Equal(FlexID("8478402"), id)
}

func (s *FlexIDSuite) TestLargeNumberKeepsPrecision() {
	id, err := s.decode(`2026020101`)
	s.Require().NoError(err)
	s.Equal(FlexID("2026020101"), id)
}

func (s *FlexIDSuite) TestStringAndNumberAgree() {
	fromString, err := s.decode(`"42"`)
	s.Require().NoError(err)
	fromNumber, err := s.decode(`42`)
	s.Require().NoError(err)
	s.Equal(fromString, fromNumber)
}

func (s *FlexIDSuite) TestNull() {
	id, err := s.decode(`null`)
	s.Require().NoError(err)
	s.Equal(FlexID(""), id)
}

func (s *FlexIDSuite) TestRejectsObject() {
	_, err := s.decode(`{"id": 1}`)
	s.Error(err)
}

func (s *FlexIDSuite) TestInStruct() {
	var req struct {
		GameID FlexID `json:"gameId"`
	}
	err := json.Unmarshal([]byte(`{"gameId": 2026020101}`), &req)
	s.Require().NoError(err)
	s.Equal(PlayerID("2026020101"), req.GameID.PlayerID())
}
