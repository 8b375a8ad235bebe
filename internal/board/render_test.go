package board

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		id   uint64
		want string
	}{
		{
			name: "start with Top to move",
			id:   0,
			want: "         0   1   2   3   4      \n" +
				"       ┏━━━┳━━━┳━━━┳━━━┳━━━┓    \n" +
				"     ■ ┃·↓ ┃∵↓ ┃:↓ ┃∵↓ ┃·↓ ┃ ■  \n" +
				"   ┏━━━╉───╂───╂───╂───╂───╊━━━┓\n" +
				"   ┃∵→ ┃   ┃   ┃   ┃   ┃   ┃  ·┃\n" +
				"   ┣━━━╉───╂───╂───╂───╂───╊━━━┫\n" +
				"   ┃·→ ┃   ┃   ┃   ┃   ┃   ┃  ∵┃\n" +
				"   ┣━━━╉───╂───╂───╂───╂───╊━━━┫\n" +
				"   ┃:→ ┃   ┃   ┃   ┃   ┃   ┃  :┃\n" +
				"   ┣━━━╉───╂───╂───╂───╂───╊━━━┫\n" +
				"   ┃·→ ┃   ┃   ┃   ┃   ┃   ┃  ∵┃\n" +
				"   ┣━━━╉───╂───╂───╂───╂───╊━━━┫\n" +
				"   ┃∵→ ┃   ┃   ┃   ┃   ┃   ┃  ·┃\n" +
				"   ┗━━━╉───╂───╂───╂───╂───╊━━━┛\n" +
				"     ■ ┃  ∵┃  ·┃  :┃  ·┃  ∵┃ ■  \n" +
				"       ┗━━━┻━━━┻━━━┻━━━┻━━━┛    \n" +
				"(ID : 0)",
		},
		{
			name: "start with Left to move",
			id:   1,
			want: "                                \n" +
				"       ┏━━━┳━━━┳━━━┳━━━┳━━━┓    \n" +
				"     ■ ┃·↓ ┃∵↓ ┃:↓ ┃∵↓ ┃·↓ ┃ ■  \n" +
				"   ┏━━━╇━━━╇━━━╇━━━╇━━━╇━━━╇━━━┓\n" +
				" 0 ┃∵→ │   │   │   │   │   │  ·┃\n" +
				"   ┣━━━┿━━━┿━━━┿━━━┿━━━┿━━━┿━━━┫\n" +
				" 1 ┃·→ │   │   │   │   │   │  ∵┃\n" +
				"   ┣━━━┿━━━┿━━━┿━━━┿━━━┿━━━┿━━━┫\n" +
				" 2 ┃:→ │   │   │   │   │   │  :┃\n" +
				"   ┣━━━┿━━━┿━━━┿━━━┿━━━┿━━━┿━━━┫\n" +
				" 3 ┃·→ │   │   │   │   │   │  ∵┃\n" +
				"   ┣━━━┿━━━┿━━━┿━━━┿━━━┿━━━┿━━━┫\n" +
				" 4 ┃∵→ │   │   │   │   │   │  ·┃\n" +
				"   ┗━━━╈━━━╈━━━╈━━━╈━━━╈━━━╈━━━┛\n" +
				"     ■ ┃  ∵┃  ·┃  :┃  ·┃  ∵┃ ■  \n" +
				"       ┗━━━┻━━━┻━━━┻━━━┻━━━┛    \n" +
				"(ID : 1)",
		},
		{
			name: "finished game",
			id:   104055570117,
			want: "                                \n" +
				"       ┏━━━┳━━━┳━━━┳━━━┳━━━┓    \n" +
				"     ■ ┃·↑ ┃∵↑ ┃:↑ ┃∵↑ ┃·  ┃ ■  \n" +
				"   ┏━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┓\n" +
				"   ┃∵← ┃   ┃   ┃   ┃   ┃ ↑ ┃  ·┃\n" +
				"   ┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫\n" +
				"   ┃·← ┃   ┃   ┃   ┃   ┃   ┃  ∵┃\n" +
				"   ┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫\n" +
				"   ┃:← ┃   ┃   ┃   ┃   ┃   ┃  :┃\n" +
				"   ┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫\n" +
				"   ┃·  ┃ ← ┃   ┃   ┃   ┃   ┃  ∵┃\n" +
				"   ┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫\n" +
				"   ┃∵  ┃ ← ┃   ┃   ┃   ┃   ┃  ·┃\n" +
				"   ┗━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┛\n" +
				"     ■ ┃  ∵┃  ·┃  :┃  ·┃  ∵┃ ■  \n" +
				"       ┗━━━┻━━━┻━━━┻━━━┻━━━┛    \n" +
				"(ID : 104055570117)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromID(tc.id).String(); got != tc.want {
				t.Errorf("render of %d:\n%s\nwant:\n%s", tc.id, got, tc.want)
			}
		})
	}
}
