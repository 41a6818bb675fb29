package generator

import "testing"

func TestGenerator_DeterministicForSeed(t *testing.T) {
	cfg := Config{NumSources: 2, NumDestinations: 3, NumRouters: 6, ExtraLinks: 4, Seed: 42}

	first := New(cfg).Generate()
	second := New(cfg).Generate()

	if len(first.Devices) != len(second.Devices) || len(first.Links) != len(second.Links) {
		t.Fatalf("expected identical sizes, got %d/%d devices and %d/%d links",
			len(first.Devices), len(second.Devices), len(first.Links), len(second.Links))
	}
	for i := range first.Links {
		if first.Links[i] != second.Links[i] {
			t.Fatalf("link %d differs: %+v vs %+v", i, first.Links[i], second.Links[i])
		}
	}
}

func TestGenerator_RoleCostsFollowConvention(t *testing.T) {
	topo := New(Config{Seed: 7}).Generate()

	if len(topo.Devices) == 0 || len(topo.Links) == 0 {
		t.Fatal("expected non-empty topology")
	}
	for _, device := range topo.Devices {
		switch device.Type {
		case "Source", "Destination":
			if device.Cost != 0 {
				t.Errorf("%s device %s must cost 0, got %v", device.Type, device.Name, device.Cost)
			}
			if device.Status != "Active" {
				t.Errorf("%s device %s must be Active", device.Type, device.Name)
			}
		case "Router":
			if device.Cost != 1 {
				t.Errorf("router %s must cost 1, got %v", device.Name, device.Cost)
			}
		default:
			t.Errorf("unexpected device type %q", device.Type)
		}
	}
	for _, link := range topo.Links {
		if link.Cost < 1 {
			t.Errorf("link %s -> %s must have positive cost, got %v", link.From, link.To, link.Cost)
		}
	}
}
