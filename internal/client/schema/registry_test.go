package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amcdesk/onboard/internal/client/models"
)

func TestFields_AllStepsDeclared(t *testing.T) {
	for step := 1; step <= models.StepCount; step++ {
		require.NotEmpty(t, Fields(step), "step %d has no fields", step)
	}
	require.Nil(t, Fields(0))
	require.Nil(t, Fields(9))
}

func TestDefaults_EveryFieldPopulated(t *testing.T) {
	for step := 1; step <= models.StepCount; step++ {
		data := Defaults(step)
		require.Len(t, data, len(Fields(step)), "step %d", step)
		for _, f := range Fields(step) {
			v, ok := data[f.Name]
			require.True(t, ok, "step %d missing default for %s", step, f.Name)

			switch f.Kind {
			case KindBool:
				require.Equal(t, false, v)
			case KindContact:
				contact, ok := v.(map[string]any)
				require.True(t, ok)
				for _, c := range ContactFields {
					require.Equal(t, "", contact[c])
				}
			case KindCollection:
				require.NotNil(t, v)
			default:
				require.Equal(t, "", v)
			}
		}
	}
}

func TestDefaults_TypedCollections(t *testing.T) {
	devices, ok := Defaults(4)["devices"].([]models.DeviceEntry)
	require.True(t, ok)
	require.Empty(t, devices)

	servers, ok := Defaults(5)["servers"].([]models.ServerEntry)
	require.True(t, ok)
	require.Empty(t, servers)
}

func TestDefaults_FreshCopies(t *testing.T) {
	a := Defaults(1)
	b := Defaults(1)
	contact := a["primary_contact"].(map[string]any)
	contact["name"] = "changed"
	require.Equal(t, "", b["primary_contact"].(map[string]any)["name"])
}

func TestLookup(t *testing.T) {
	f, ok := Lookup(3, "has_laptops")
	require.True(t, ok)
	require.Equal(t, KindBool, f.Kind)

	_, ok = Lookup(3, "does_not_exist")
	require.False(t, ok)

	_, ok = Lookup(99, "has_laptops")
	require.False(t, ok)
}

func TestCategoryFlags_NineInStepOrder(t *testing.T) {
	flags := CategoryFlags()
	require.Len(t, flags, 9)
	for _, cf := range flags {
		f, ok := Lookup(3, cf.Field)
		require.True(t, ok, "flag %s not in step 3", cf.Field)
		require.Equal(t, KindBool, f.Kind)
	}
}
