package manifest

import (
	"testing"
)

func TestDotnetReaderPackageReferences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.csproj", `<Project Sdk="Microsoft.NET.Sdk">
  <ItemGroup>
    <PackageReference Include="Newtonsoft.Json" Version="13.0.3" />
    <PackageReference Include="Serilog">
      <Version>3.1.1</Version>
    </PackageReference>
  </ItemGroup>
</Project>`)

	reader := &DotnetReader{}
	deps, err := reader.Read(dir)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(deps) != 2 {
		t.Fatalf("expected 2 dependencies, got %d", len(deps))
	}
	if deps[0].Name != "Newtonsoft.Json" || deps[0].Version != "13.0.3" {
		t.Errorf("attribute version dependency = %+v", deps[0])
	}
	if deps[1].Name != "Serilog" || deps[1].Version != "3.1.1" {
		t.Errorf("element version dependency = %+v", deps[1])
	}
	if deps[0].Metadata["project"] != "app.csproj" {
		t.Errorf("project metadata = %q", deps[0].Metadata["project"])
	}
}

func TestDotnetReaderDeduplicatesAcrossProjects(t *testing.T) {
	dir := t.TempDir()
	csproj := `<Project Sdk="Microsoft.NET.Sdk">
  <ItemGroup>
    <PackageReference Include="Newtonsoft.Json" Version="13.0.3" />
  </ItemGroup>
</Project>`
	writeFile(t, dir, "a.csproj", csproj)
	writeFile(t, dir, "b.csproj", csproj)

	reader := &DotnetReader{}
	deps, err := reader.Read(dir)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(deps) != 1 {
		t.Fatalf("expected 1 deduplicated dependency, got %d", len(deps))
	}
}

func TestDotnetReaderMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.csproj", "<Project><ItemGroup>")

	reader := &DotnetReader{}
	_, err := reader.Read(dir)
	if err == nil || !IsParseError(err) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
