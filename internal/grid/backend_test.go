package grid_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dshills/neocrystal/internal/grid"
	"github.com/dshills/neocrystal/internal/grid/mocks"
)

func TestExecuteDrivesBackendInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)

	ui := grid.New[string](20, 4)
	ui.Declare("title", grid.Span{Start: 1, Len: 5}, grid.Span{Start: 0, Len: 1})
	ui.Write("title", 0, 0, "AB", 3)
	ui.InjectRepeatedRows(0, 1, "|", 2, 2)

	gomock.InOrder(
		b.EXPECT().Cursor(1, 0),
		b.EXPECT().Span([]byte("     "), grid.FillColor),
		b.EXPECT().Cursor(1, 0),
		b.EXPECT().Span([]byte("AB"), grid.Color(3)),
		b.EXPECT().Cursor(0, 1),
		b.EXPECT().Span([]byte("|"), grid.Color(2)),
		b.EXPECT().Cursor(0, 2),
		b.EXPECT().Span([]byte("|"), grid.Color(2)),
		b.EXPECT().Flush().Times(1),
	)

	ui.Execute(b)
}

func TestExecuteEmptyFrameOnlyFlushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)

	b.EXPECT().Flush().Times(1)

	grid.New[string](10, 10).Execute(b)
}

func TestExecuteRepeatedColsIsOneSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)

	ui := grid.New[int](10, 1)
	ui.Declare(0, grid.Span{Start: 0, Len: 5}, grid.Span{Start: 0, Len: 1})
	ui.WriteRepeatedCols(0, 0, 0, "-", 1, 5)

	gomock.InOrder(
		b.EXPECT().Cursor(0, 0).Times(1),
		b.EXPECT().Span([]byte("-----"), grid.Color(1)).Times(1),
		b.EXPECT().Flush(),
	)

	ui.Execute(b)
}
