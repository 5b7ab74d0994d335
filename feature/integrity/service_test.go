package integrity

import (
	"context"
	"testing"

	"data-exporter/core/database"
	"data-exporter/core/output"
	"data-exporter/core/reconcile"
	"data-exporter/core/unreal"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var requiredTables = []unreal.ObjectIdentifier{
	{ObjectName: "ItemTable_Global", ObjectPath: "/Game/Blueprints/Items/ItemTable_Global.0"},
	{ObjectName: "DT_Recipes", ObjectPath: "/Game/Blueprints/DataTables/DT_Recipes.0"},
}

type fixture struct {
	input     afero.Fs
	reference *output.FileSink
	db        *gorm.DB
	dbSink    *output.DatabaseSink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	input := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(input, "/data/Blueprints/Items/ItemTable_Global.json", []byte(`[{"Rows": {}}]`), 0o644))
	require.NoError(t, afero.WriteFile(input, "/data/Blueprints/DataTables/DT_Recipes.json", []byte(`[{"Rows": {}}]`), 0o644))

	reference := output.NewFileSink(afero.NewMemMapFs(), "/out")
	require.NoError(t, reference.WriteFile(ctx, "Items.json", []byte("{}")))

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	dbSink, err := output.NewDatabaseSink(db)
	require.NoError(t, err)
	require.NoError(t, dbSink.WriteFile(ctx, "Items.json", []byte("{}")))

	return &fixture{input: input, reference: reference, db: db, dbSink: dbSink}
}

func (f *fixture) service() *Service {
	objects := unreal.NewObjectStore(f.input, "/data", zap.NewNop())
	return NewService(objects, requiredTables, f.db, f.reference, []reconcile.Store{f.dbSink}, zap.NewNop())
}

func TestService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("AllPass", func(t *testing.T) {
		report := newFixture(t).service().Run(ctx)

		assert.True(t, report.OK())
		assert.Equal(t, StatusOK, report["input"].Status)
		assert.Equal(t, StatusOK, report["schema"].Status)
		assert.Equal(t, StatusOK, report["outputs"].Status)
	})

	t.Run("DetectsDrift", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.input.Remove("/data/Blueprints/DataTables/DT_Recipes.json"))
		require.NoError(t, f.dbSink.WriteFile(ctx, "Old.json", []byte("[]")))

		report := f.service().Run(ctx)

		assert.False(t, report.OK())
		assert.Equal(t, CheckResult{Status: StatusFailed, Details: []string{"/Game/Blueprints/DataTables/DT_Recipes.0"}}, report["input"])
		assert.Equal(t, StatusFailed, report["outputs"].Status)
		summary := report["outputs"].Details.(*reconcile.Summary)
		assert.Equal(t, 1, summary.Stale[output.TargetDatabase])
	})

	t.Run("SkipsDisabledBackends", func(t *testing.T) {
		f := newFixture(t)
		objects := unreal.NewObjectStore(f.input, "/data", zap.NewNop())
		report := NewService(objects, requiredTables, nil, f.reference, nil, zap.NewNop()).Run(ctx)

		assert.True(t, report.OK())
		assert.Equal(t, CheckResult{Status: StatusSkipped}, report["schema"])
		assert.Equal(t, CheckResult{Status: StatusSkipped}, report["outputs"])
	})
}

func TestService_CheckSchemaSkipped(t *testing.T) {
	s := NewService(nil, nil, nil, nil, nil, zap.NewNop())

	_, err := s.CheckSchema()
	assert.ErrorIs(t, err, ErrSkipped)

	_, err = s.CheckOutputs(context.Background())
	assert.ErrorIs(t, err, ErrSkipped)
}
