package pet_test

import (
	"testing"
	"time"

	"github.com/cozypet/nestd/internal/domain/pet"
	"github.com/stretchr/testify/require"
)

func testThresholds() pet.Thresholds {
	return pet.Thresholds{
		Hatch:  60 * time.Second,
		Fledge: 300 * time.Second,
		Mature: 900 * time.Second,
	}
}

func TestAdvance_LifecycleExample(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())
	require.Equal(t, pet.StageEgg, p.Stage)
	require.Zero(t, p.Age)

	change, err := p.Advance(61 * time.Second)
	require.NoError(t, err)
	require.NotNil(t, change)
	require.Equal(t, pet.StageEgg, change.From)
	require.Equal(t, pet.StageHatchling, change.To)
	require.Equal(t, pet.StageHatchling, p.Stage)

	// Crosses fledge and mature in one call: one change, final stage.
	change, err = p.Advance(1000 * time.Second)
	require.NoError(t, err)
	require.NotNil(t, change)
	require.Equal(t, pet.StageHatchling, change.From)
	require.Equal(t, pet.StageAdult, change.To)
	require.Equal(t, pet.StageAdult, p.Stage)

	change, err = p.Advance(5 * time.Second)
	require.NoError(t, err)
	require.Nil(t, change)
	require.Equal(t, pet.StageAdult, p.Stage)
}

func TestAdvance_AgeSumsDeltas(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())

	deltas := []time.Duration{0, 13 * time.Second, 200 * time.Millisecond, 47 * time.Second}
	var total time.Duration
	for _, d := range deltas {
		_, err := p.Advance(d)
		require.NoError(t, err)
		total += d
	}
	require.Equal(t, total, p.Age)
}

func TestAdvance_GranularityIndependent(t *testing.T) {
	total := 901 * time.Second

	coarse := pet.New("n1", "Pip", testThresholds())
	_, err := coarse.Advance(total)
	require.NoError(t, err)

	fine := pet.New("n1", "Pip", testThresholds())
	step := time.Second
	for advanced := time.Duration(0); advanced < total; advanced += step {
		_, err := fine.Advance(step)
		require.NoError(t, err)
	}

	require.Equal(t, coarse.Stage, fine.Stage)
	require.Equal(t, coarse.Age, fine.Age)
	require.Equal(t, pet.StageAdult, coarse.Stage)
}

func TestAdvance_StageNeverRegresses(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())
	prev := p.Stage
	for i := 0; i < 50; i++ {
		_, err := p.Advance(25 * time.Second)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p.Stage, prev)
		prev = p.Stage
	}
}

func TestAdvance_RejectsNegativeElapsed(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())
	_, err := p.Advance(70 * time.Second)
	require.NoError(t, err)

	stage, age := p.Stage, p.Age
	change, err := p.Advance(-1 * time.Second)
	require.ErrorIs(t, err, pet.ErrNegativeElapsed)
	require.Nil(t, change)
	require.Equal(t, stage, p.Stage)
	require.Equal(t, age, p.Age)
}

func TestAdvance_AdultIsTerminal(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())
	_, err := p.Advance(time.Hour)
	require.NoError(t, err)
	require.Equal(t, pet.StageAdult, p.Stage)

	for _, d := range []time.Duration{0, time.Second, 24 * time.Hour} {
		change, err := p.Advance(d)
		require.NoError(t, err)
		require.Nil(t, change)
		require.Equal(t, pet.StageAdult, p.Stage)
	}
}

func TestAdvance_StageEnteredAtIsThreshold(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())

	_, err := p.Advance(75 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 60*time.Second, p.StageEnteredAt)

	// Skipping straight to Adult records the mature threshold, not an
	// intermediate one.
	_, err = p.Advance(time.Hour)
	require.NoError(t, err)
	require.Equal(t, 900*time.Second, p.StageEnteredAt)
}

func TestReset(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())
	_, err := p.Advance(time.Hour)
	require.NoError(t, err)
	require.Equal(t, pet.StageAdult, p.Stage)

	p.Reset()
	require.Equal(t, pet.StageEgg, p.Stage)
	require.Zero(t, p.Age)
	require.Zero(t, p.StageEnteredAt)

	change, err := p.Advance(61 * time.Second)
	require.NoError(t, err)
	require.NotNil(t, change)
	require.Equal(t, pet.StageHatchling, p.Stage)
}

func TestRestore_StageIsAuthoritative(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())

	// Snapshot claims Juvenile at an age that implies Hatchling. The
	// stored stage wins and never regresses.
	require.NoError(t, p.Restore(pet.StageJuvenile, 90*time.Second))
	require.Equal(t, pet.StageJuvenile, p.Stage)
	require.Equal(t, 90*time.Second, p.Age)

	change, err := p.Advance(time.Second)
	require.NoError(t, err)
	require.Nil(t, change)
	require.Equal(t, pet.StageJuvenile, p.Stage)
}

func TestRestore_RejectsBadSnapshot(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())
	require.ErrorIs(t, p.Restore(pet.Stage(9), time.Second), pet.ErrInvalidStage)
	require.ErrorIs(t, p.Restore(pet.StageEgg, -time.Second), pet.ErrNegativeElapsed)
}

func TestNextStageIn(t *testing.T) {
	p := pet.New("n1", "Pip", testThresholds())

	remaining, ok := p.NextStageIn()
	require.True(t, ok)
	require.Equal(t, 60*time.Second, remaining)

	_, err := p.Advance(45 * time.Second)
	require.NoError(t, err)
	remaining, ok = p.NextStageIn()
	require.True(t, ok)
	require.Equal(t, 15*time.Second, remaining)

	_, err = p.Advance(time.Hour)
	require.NoError(t, err)
	_, ok = p.NextStageIn()
	require.False(t, ok)
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, testThresholds().Validate())
	require.NoError(t, pet.DefaultThresholds().Validate())

	bad := []pet.Thresholds{
		{Hatch: 0, Fledge: time.Minute, Mature: time.Hour},
		{Hatch: -time.Second, Fledge: time.Minute, Mature: time.Hour},
		{Hatch: time.Minute, Fledge: time.Minute, Mature: time.Hour},
		{Hatch: time.Minute, Fledge: time.Hour, Mature: time.Hour},
	}
	for _, th := range bad {
		require.ErrorIs(t, th.Validate(), pet.ErrInvalidThresholds)
	}
}

func TestStage_ParseAndString(t *testing.T) {
	for _, s := range []pet.Stage{pet.StageEgg, pet.StageHatchling, pet.StageJuvenile, pet.StageAdult} {
		parsed, err := pet.ParseStage(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	_, err := pet.ParseStage("chick")
	require.ErrorIs(t, err, pet.ErrInvalidStage)
}

func TestStage_JSONRoundTrip(t *testing.T) {
	data, err := pet.StageJuvenile.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `"juvenile"`, string(data))

	var s pet.Stage
	require.NoError(t, s.UnmarshalJSON([]byte(`"adult"`)))
	require.Equal(t, pet.StageAdult, s)

	require.Error(t, s.UnmarshalJSON([]byte(`"dragon"`)))
}
