package client

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/character-sheet/internal/clients/gateway"
	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/engine/rpgtoolkit"
	v1alpha1 "github.com/KirkDiggler/character-sheet/internal/handlers/roster/v1alpha1"
	"github.com/KirkDiggler/character-sheet/internal/orchestrators/roster"
	"github.com/KirkDiggler/character-sheet/internal/pkg/idgen"
	rosterrepo "github.com/KirkDiggler/character-sheet/internal/repositories/roster"
	"github.com/KirkDiggler/character-sheet/internal/rules"
)

type fixedRoller struct{ value int }

func (r *fixedRoller) Roll(_ int) (int, error) { return r.value, nil }
func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, nil
}

type ClientCommandsTestSuite struct {
	suite.Suite
	server      *grpc.Server
	api         *httptest.Server
	apiStatus   atomic.Int32
	savedBodies atomic.Int32
}

func TestClientCommandsSuite(t *testing.T) {
	suite.Run(t, new(ClientCommandsTestSuite))
}

func (s *ClientCommandsTestSuite) SetupTest() {
	s.apiStatus.Store(http.StatusCreated)
	s.savedBodies.Store(0)
	s.api = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.savedBodies.Add(1)
		w.WriteHeader(int(s.apiStatus.Load()))
	}))

	e, err := engine.New(&engine.Config{Rules: rules.MustDefault()})
	s.Require().NoError(err)

	checker, err := rpgtoolkit.NewChecker(&rpgtoolkit.CheckerConfig{
		Engine:     e,
		DiceRoller: &fixedRoller{value: 15},
	})
	s.Require().NoError(err)

	gw, err := gateway.New(&gateway.Config{Endpoint: s.api.URL})
	s.Require().NoError(err)

	orch, err := roster.New(&roster.Config{
		Repository:   rosterrepo.NewInMemory(),
		Engine:       e,
		Checker:      checker,
		Gateway:      gw,
		EventBus:     events.NewBus(),
		RosterIDs:    idgen.NewSequential(idgen.PrefixRoster),
		CharacterIDs: idgen.NewSequential(idgen.PrefixCharacter),
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RosterService: orch, Engine: e})
	s.Require().NoError(err)

	lis := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterRosterServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	dialOptions = []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	}
}

func (s *ClientCommandsTestSuite) TearDownTest() {
	s.server.Stop()
	s.api.Close()
	dialOptions = nil
}

// run executes a client command and returns what it printed
func (s *ClientCommandsTestSuite) run(args ...string) (string, error) {
	emptyRoster = false
	rosterID = ""
	index = 0

	var out bytes.Buffer
	ClientCmd.SetOut(&out)
	ClientCmd.SetErr(&out)
	ClientCmd.SetArgs(append(args, "--server", "passthrough:///bufnet"))
	err := ClientCmd.Execute()
	return out.String(), err
}

func (s *ClientCommandsTestSuite) createRoster() string {
	out, err := s.run("create-roster")
	s.Require().NoError(err)
	s.Require().Contains(out, "Roster ID: roster_1")
	return "roster_1"
}

func (s *ClientCommandsTestSuite) TestCreateRosterPrintsCard() {
	out, err := s.run("create-roster")
	s.Require().NoError(err)

	s.Assert().Contains(out, "Roster ID: roster_1")
	s.Assert().Contains(out, "Character 1")
	s.Assert().Contains(out, "Attributes (60 used, 10 remaining)")
	s.Assert().Contains(out, "Skills (10 points remaining)")
}

func (s *ClientCommandsTestSuite) TestIntentPrintsUpdatedCard() {
	id := s.createRoster()

	out, err := s.run("inc-attr", "Strength", "--roster", id, "--index", "0")
	s.Require().NoError(err)
	s.Assert().Contains(out, "Attributes (61 used, 9 remaining)")

	out, err = s.run("inc-skill", "Athletics", "--roster", id)
	s.Require().NoError(err)
	s.Assert().Contains(out, "Skills (9 points remaining)")
}

func (s *ClientCommandsTestSuite) TestRejectionPrintsNoticeAndSucceeds() {
	id := s.createRoster()

	out, err := s.run("dec-skill", "Arcana", "--roster", id)
	s.Require().NoError(err)
	s.Assert().Equal("Notice: Skill points cannot be negative.\n", out)

	out, err = s.run("select-class", "Wizard", "--roster", id)
	s.Require().NoError(err)
	s.Assert().Equal("Notice: Requirements for Wizard are not met.\n", out)
}

func (s *ClientCommandsTestSuite) TestFaultsReturnErrors() {
	id := s.createRoster()

	_, err := s.run("inc-attr", "Luck", "--roster", id)
	s.Assert().Error(err)

	_, err = s.run("show", "--roster", "roster_404")
	s.Assert().Error(err)
}

func (s *ClientCommandsTestSuite) TestAddCharacterAndShow() {
	id := s.createRoster()

	out, err := s.run("add-character", "--roster", id)
	s.Require().NoError(err)
	s.Assert().Contains(out, "Character 2")

	out, err = s.run("show", "--roster", id)
	s.Require().NoError(err)
	s.Assert().Contains(out, "Character 1")
	s.Assert().Contains(out, "Character 2")
}

func (s *ClientCommandsTestSuite) TestShowEmptyRoster() {
	_, err := s.run("create-roster", "--empty")
	s.Require().NoError(err)

	out, err := s.run("show", "--roster", "roster_1")
	s.Require().NoError(err)
	s.Assert().Equal("Roster roster_1 has no characters\n", out)
}

func (s *ClientCommandsTestSuite) TestCheckSkill() {
	id := s.createRoster()

	out, err := s.run("check-skill", "Stealth", "--roster", id)
	s.Require().NoError(err)
	s.Assert().Equal("Stealth check: rolled 15 +0 = 15\n", out)
}

func (s *ClientCommandsTestSuite) TestSave() {
	id := s.createRoster()

	out, err := s.run("save", "--roster", id)
	s.Require().NoError(err)
	s.Assert().Equal("Characters saved successfully! (1 characters)\n", out)
	s.Assert().Equal(int32(1), s.savedBodies.Load())
}

func (s *ClientCommandsTestSuite) TestSaveFailureIsNotice() {
	id := s.createRoster()
	s.apiStatus.Store(http.StatusInternalServerError)

	out, err := s.run("save", "--roster", id)
	s.Require().NoError(err)
	s.Assert().True(strings.HasPrefix(out, "Notice: Failed to save characters."))
}

func (s *ClientCommandsTestSuite) TestDeleteRoster() {
	id := s.createRoster()

	out, err := s.run("delete-roster", "--roster", id)
	s.Require().NoError(err)
	s.Assert().Equal("Roster roster_1 deleted\n", out)

	_, err = s.run("show", "--roster", id)
	s.Assert().Error(err)
}
