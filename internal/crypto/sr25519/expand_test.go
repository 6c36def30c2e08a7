package sr25519

import "testing"

func TestDivideByCofactor(t *testing.T) {
	s := make([]byte, 32)
	s[0] = 8
	s[1] = 1
	s[31] = 0x40
	divideByCofactor(s)

	want := make([]byte, 32)
	want[0] = 1 + 32
	want[31] = 0x08
	for i := range s {
		if s[i] != want[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, s[i], want[i])
		}
	}
}

func TestExpand_ScalarBelowGroupOrder(t *testing.T) {
	var m MiniSecretKey
	for i := range m {
		m[i] = 0xff
	}
	sk := m.Expand()
	if sk.key.Bytes()[31]&0xf0 != 0 {
		t.Fatalf("expanded scalar has bits above 2^252: %x", sk.key.Bytes())
	}
	sk.Wipe()
	for _, b := range sk.Bytes() {
		if b != 0 {
			t.Fatal("Wipe left secret bytes behind")
		}
	}
}
