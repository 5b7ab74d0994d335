package output_test

import (
	"context"
	"errors"
	"testing"

	"data-exporter/core/database"
	"data-exporter/core/output"
	"data-exporter/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type document struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileSink(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	sink := output.NewFileSink(fs, "/out")

	require.NoError(t, sink.WriteJSON(ctx, "Items.json", []document{{Name: "Glue", Count: 2}}))
	require.NoError(t, sink.WriteFile(ctx, "Icons/Item Icon - Glue.png", []byte{0x89, 'P', 'N', 'G'}))

	data, err := afero.ReadFile(fs, "/out/Items.json")
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"Glue\",\n    \"count\": 2\n  }\n]", string(data))

	icon, err := afero.ReadFile(fs, "/out/Icons/Item Icon - Glue.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, icon)
}

func TestFileSink_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := output.NewFileSink(afero.NewMemMapFs(), "/out").WriteFile(ctx, "a.json", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBucketSink(t *testing.T) {
	ctx := context.Background()

	t.Run("UploadsWithPrefix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", ctx, "exports", "wiki/Items.json", mock.Anything, int64(2), minio.PutObjectOptions{
			ContentType:  "application/json",
			UserMetadata: map[string]string{output.ChecksumMetadata: output.Checksum([]byte("{}"))},
		}).Return(minio.UploadInfo{}, nil)

		sink := output.NewBucketSink(client, "exports", "wiki")
		require.NoError(t, sink.WriteFile(ctx, "Items.json", []byte("{}")))
		client.AssertExpectations(t)
	})

	t.Run("NoPrefix", func(t *testing.T) {
		sink := output.NewBucketSink(new(mocks.Client), "exports", "")
		assert.Equal(t, "Icons/a.png", sink.ObjectName("Icons/a.png"))
	})

	t.Run("UploadFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", ctx, "exports", "Items.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		err := output.NewBucketSink(client, "exports", "").WriteJSON(ctx, "Items.json", map[string]int{"a": 1})
		assert.ErrorContains(t, err, "failed to upload Items.json")
	})
}

func TestDatabaseSink(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	sink, err := output.NewDatabaseSink(db)
	require.NoError(t, err)

	require.NoError(t, sink.WriteJSON(ctx, "Items.json", document{Name: "Glue"}))
	require.NoError(t, sink.WriteFile(ctx, "Recipes.json", []byte("[]")))
	require.NoError(t, sink.WriteJSON(ctx, "Items.json", document{Name: "Rope", Count: 1}))

	files, err := sink.Files(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "Items.json", files[0].Path)
	assert.Equal(t, "application/json", files[0].ContentType)
	assert.Len(t, files[0].Checksum, 64)
	assert.Nil(t, files[0].Content)

	var stored output.ExportedFile
	require.NoError(t, db.Where("path = ?", "Items.json").First(&stored).Error)
	assert.Contains(t, string(stored.Content), "Rope")
	assert.Equal(t, int64(len(stored.Content)), stored.Size)
}

type failingSink struct{ err error }

func (f failingSink) WriteJSON(context.Context, string, any) error    { return f.err }
func (f failingSink) WriteFile(context.Context, string, []byte) error { return f.err }

func TestMulti_WritesEveryTarget(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	fs := afero.NewMemMapFs()

	sink := output.Multi(failingSink{err: boom}, output.NewFileSink(fs, "/out"))
	err := sink.WriteJSON(ctx, "Items.json", []int{1})
	assert.ErrorIs(t, err, boom)

	exists, err := afero.Exists(fs, "/out/Items.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("SingleFileTarget", func(t *testing.T) {
		sink, err := output.New(ctx, output.Config{Directory: "/out", Targets: []string{output.TargetFile}}, output.Backends{Fs: afero.NewMemMapFs()})
		require.NoError(t, err)
		assert.IsType(t, &output.FileSink{}, sink)
	})

	t.Run("BucketCreatesMissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "exports").Return(false, nil)
		client.On("MakeBucket", ctx, "exports", minio.MakeBucketOptions{}).Return(nil)

		sink, err := output.New(ctx,
			output.Config{Targets: []string{output.TargetFile, output.TargetBucket}},
			output.Backends{Fs: afero.NewMemMapFs(), Storage: client, Bucket: "exports"},
		)
		require.NoError(t, err)
		assert.NotNil(t, sink)
		client.AssertExpectations(t)
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			name    string
			targets []string
		}{
			{"NoTargets", nil},
			{"Unknown", []string{"ftp"}},
			{"BucketWithoutClient", []string{output.TargetBucket}},
			{"DatabaseWithoutConnection", []string{output.TargetDatabase}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := output.New(ctx, output.Config{Targets: tt.targets}, output.Backends{})
				assert.Error(t, err)
			})
		}
	})
}

func TestConfig_Has(t *testing.T) {
	cfg := output.Config{Targets: []string{output.TargetFile, output.TargetDatabase}}
	assert.True(t, cfg.Has(output.TargetFile))
	assert.True(t, cfg.Has(output.TargetDatabase))
	assert.False(t, cfg.Has(output.TargetBucket))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", output.ContentType("Items.json"))
	assert.Equal(t, "image/png", output.ContentType("Icons/Item Icon - Glue.png"))
	assert.Equal(t, "application/octet-stream", output.ContentType("README"))
}
