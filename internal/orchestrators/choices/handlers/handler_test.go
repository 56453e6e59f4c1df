package handlers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginemock "github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine/mock"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/choices/handlers"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/improvement"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/pkg/idgen"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/testutils"
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEngine *enginemock.MockEngine
	cfg        *handlers.Config
	handlers   map[choice.Type]handlers.Handler
	ctx        context.Context
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockEngine.EXPECT().CalculateAbilityModifier(gomock.Any()).DoAndReturn(entities.Modifier).AnyTimes()
	s.ctx = context.Background()

	cat := testutils.CreateTestCatalog(s.T(), nil)
	ids := idgen.NewSequential("row")
	improvements, err := improvement.New(&improvement.Config{Catalog: cat, IDGenerator: ids})
	s.Require().NoError(err)

	s.cfg = &handlers.Config{
		Catalog:      cat,
		Engine:       s.mockEngine,
		Improvements: improvements,
		IDGenerator:  ids,
	}
	all, err := handlers.All(s.cfg)
	s.Require().NoError(err)

	s.handlers = make(map[choice.Type]handlers.Handler, len(all))
	for _, h := range all {
		s.handlers[h.Type()] = h
	}
}

func (s *HandlersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlersTestSuite) enumerate(t choice.Type, char *entities.Character) []*choice.Decision {
	decisions, err := s.handlers[t].Enumerate(s.ctx, char)
	s.Require().NoError(err)
	return decisions
}

// decision enumerates t and returns the instance with id
func (s *HandlersTestSuite) decision(t choice.Type, char *entities.Character, id string) *choice.Decision {
	for _, d := range s.enumerate(t, char) {
		if d.ID == id {
			return d
		}
	}
	s.FailNowf("decision not found", "no %s decision with id %s", t, id)
	return nil
}

func (s *HandlersTestSuite) resolve(t choice.Type, char *entities.Character, id string, sel *choice.Selection) error {
	d := s.decision(t, char, id)
	return s.handlers[t].Resolve(s.ctx, char, d, sel)
}

func (s *HandlersTestSuite) undo(t choice.Type, char *entities.Character, id string) error {
	d := s.decision(t, char, id)
	return s.handlers[t].Undo(s.ctx, char, d)
}

func selection(keys ...string) *choice.Selection {
	return &choice.Selection{Selected: keys}
}

func (s *HandlersTestSuite) TestAll_RegistersEveryTypeInOrder() {
	all, err := handlers.All(s.cfg)
	s.Require().NoError(err)

	types := make([]choice.Type, 0, len(all))
	for _, h := range all {
		types = append(types, h.Type())
	}
	s.Equal(choice.Types(), types)
}

func (s *HandlersTestSuite) TestAll_Validation() {
	_, err := handlers.All(nil)
	s.Error(err)

	_, err = handlers.All(&handlers.Config{Catalog: s.cfg.Catalog})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Engine")
}
