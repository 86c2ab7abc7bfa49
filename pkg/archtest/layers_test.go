package archtest

import (
	"path/filepath"
	"testing"

	"github.com/matthewmcnew/archtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rules below apply to this module itself. Dependency rules are
// transitive and ignore test files.

func TestControllersDoNotReachStorage(t *testing.T) {
	archtest.Package(t, "songmanager/api/...").ShouldNotDependOn("songmanager/infrastructure/...")
	archtest.Package(t, "songmanager/api/song").ShouldNotDependOn(
		"songmanager/cmd/...",
		"songmanager/api/middleware",
	)
}

func TestServiceDependsOnlyOnDomain(t *testing.T) {
	archtest.Package(t, "songmanager/application/...").ShouldNotDependOn(
		"songmanager/api/...",
		"songmanager/infrastructure/...",
		"songmanager/cmd/...",
	)
}

func TestDomainIsIndependent(t *testing.T) {
	archtest.Package(t, "songmanager/domain/...").ShouldNotDependOn(
		"songmanager/api/...",
		"songmanager/application/...",
		"songmanager/infrastructure/...",
		"songmanager/cmd/...",
		"songmanager/config/...",
		"songmanager/pkg/...",
	)
}

func TestStorageDoesNotDependOnUpperLayers(t *testing.T) {
	archtest.Package(t, "songmanager/infrastructure/...").ShouldNotDependOn(
		"songmanager/api/...",
		"songmanager/application/...",
		"songmanager/cmd/...",
	)
}

func TestSharedPackagesStayBelowLayers(t *testing.T) {
	archtest.Package(t, "songmanager/pkg/...").ShouldNotDependOn(
		"songmanager/api/...",
		"songmanager/application/...",
		"songmanager/infrastructure/...",
		"songmanager/cmd/...",
	)
	archtest.Package(t, "songmanager/config/...").ShouldNotDependOn(
		"songmanager/api/...",
		"songmanager/application/...",
		"songmanager/domain/...",
		"songmanager/infrastructure/...",
		"songmanager/cmd/...",
		"songmanager/pkg/...",
	)
}

func TestControllersAreIsolated(t *testing.T) {
	archtest.Package(t, "songmanager/api/song").ShouldNotDependOn("songmanager/api/health")
	archtest.Package(t, "songmanager/api/health").ShouldNotDependOn("songmanager/api/song")
}

func moduleTypes(t *testing.T, dir string) map[string]bool {
	t.Helper()
	root, err := FindModuleRoot(".")
	require.NoError(t, err)
	types, err := Types(filepath.Join(root, filepath.FromSlash(dir)))
	require.NoError(t, err)
	return types
}

func TestRepositoryContractIsDomainInterface(t *testing.T) {
	isInterface, ok := moduleTypes(t, "domain/song")["Repository"]
	require.True(t, ok, "domain/song declares Repository")
	assert.True(t, isInterface)
}

func TestNaming(t *testing.T) {
	_, ok := moduleTypes(t, "api/song")["Controller"]
	assert.True(t, ok, "api/song exports Controller")

	_, ok = moduleTypes(t, "application/song")["Service"]
	assert.True(t, ok, "application/song exports Service")

	for _, dir := range []string{"infrastructure/persistence/memory", "infrastructure/persistence/relational"} {
		assert.NotEmpty(t, Implementations(moduleTypes(t, dir), "Repository"), "%s implements a *Repository", dir)
	}
}
