package schema

import (
	"testing"

	"entgo.io/ent"
)

// Every edge that binds a foreign-key field must have that field declared
// in Fields(), or entc generation fails for the whole schema.
func TestEdgeFieldsDeclared(t *testing.T) {
	schemas := []struct {
		name   string
		fields []ent.Field
		edges  []ent.Edge
	}{
		{"Event", Event{}.Fields(), Event{}.Edges()},
		{"FlyerFile", FlyerFile{}.Fields(), FlyerFile{}.Edges()},
		{"ExtractJob", ExtractJob{}.Fields(), ExtractJob{}.Edges()},
	}
	for _, s := range schemas {
		declared := make(map[string]bool, len(s.fields))
		for _, f := range s.fields {
			declared[f.Descriptor().Name] = true
		}
		for _, e := range s.edges {
			d := e.Descriptor()
			if d.Field != "" && !declared[d.Field] {
				t.Errorf("%s: edge %q binds field %q but Fields() does not declare it", s.name, d.Name, d.Field)
			}
		}
	}
}
