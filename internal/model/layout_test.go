package model

import "testing"

func TestRecalculateFieldPositionsContiguous(t *testing.T) {
	fields := []LayoutField{
		{FieldName: "matricula", FieldSize: 6},
		{FieldName: "codigo", FieldSize: 4},
		{FieldName: "valor", FieldSize: 9},
	}

	RecalculateFieldPositions(fields)

	want := []struct{ order, start, end int }{
		{1, 1, 6},
		{2, 7, 10},
		{3, 11, 19},
	}
	for i, w := range want {
		f := fields[i]
		if f.OrderPosition != w.order || f.StartPosition != w.start || f.EndPosition != w.end {
			t.Errorf("campo %s: got (%d, %d, %d), want (%d, %d, %d)",
				f.FieldName, f.OrderPosition, f.StartPosition, f.EndPosition, w.order, w.start, w.end)
		}
	}
}

func TestRecalculateFieldPositionsAfterRemoval(t *testing.T) {
	fields := []LayoutField{
		{FieldName: "matricula", FieldSize: 6, OrderPosition: 1, StartPosition: 1, EndPosition: 6},
		{FieldName: "valor", FieldSize: 9, OrderPosition: 3, StartPosition: 11, EndPosition: 19},
	}

	// Simula a remoção do campo do meio: ordem e posições são reindexadas
	// sem deixar lacunas.
	RecalculateFieldPositions(fields)

	if fields[1].OrderPosition != 2 {
		t.Errorf("order_position = %d, want 2", fields[1].OrderPosition)
	}
	if fields[1].StartPosition != 7 || fields[1].EndPosition != 15 {
		t.Errorf("posições = (%d, %d), want (7, 15)", fields[1].StartPosition, fields[1].EndPosition)
	}
}

func TestRecalculateFieldPositionsEmpty(t *testing.T) {
	RecalculateFieldPositions(nil) // não deve entrar em pânico
}
