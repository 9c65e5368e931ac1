// This file is part of corsim0.
//
// corsim0 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// corsim0 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with corsim0.  If not, see <https://www.gnu.org/licenses/>.

package monitor

// list of commands understood by the monitor.
const (
	cmdStep   = "STEP"
	cmdRun    = "RUN"
	cmdReset  = "RESET"
	cmdDump   = "DUMP"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdReg    = "REG"
	cmdMap    = "MAP"
	cmdLog    = "LOG"
	cmdTrace  = "TRACE"
	cmdMemviz = "MEMVIZ"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

// the minimum and maximum number of arguments for each command
var commandArgs = map[string][2]int{
	cmdStep:   {0, 1},
	cmdRun:    {0, 0},
	cmdReset:  {0, 0},
	cmdDump:   {0, 0},
	cmdPeek:   {1, 2},
	cmdPoke:   {2, 2},
	cmdReg:    {2, 2},
	cmdMap:    {0, 0},
	cmdLog:    {0, 1},
	cmdTrace:  {0, 1},
	cmdMemviz: {1, 1},
	cmdHelp:   {0, 1},
	cmdQuit:   {0, 0},
}

// help text for each command. the commands are listed by HELP in this order.
var help = []struct {
	cmd  string
	args string
	text string
}{
	{cmdStep, "[n]", "Execute the next instruction. Optional argument sets the number of instructions"},
	{cmdRun, "", "Run until the CPU halts or the step limit is reached. Interrupt to stop early"},
	{cmdReset, "", "Reset the CPU from the vector table. Memory is not changed"},
	{cmdDump, "", "Display the CPU registers"},
	{cmdPeek, "address [n]", "Display the word at the address. Optional argument sets the number of words"},
	{cmdPoke, "address value", "Write a word to memory. Read only memory can be written"},
	{cmdReg, "n value", "Set register n (0 to 15) to the value"},
	{cmdMap, "", "Display the memory map"},
	{cmdLog, "[n]", "Display the log. Optional argument limits output to the most recent n entries"},
	{cmdTrace, "[ON|OFF]", "Toggle or set the instruction trace"},
	{cmdMemviz, "file", "Write the CPU state to a graphviz file"},
	{cmdHelp, "[command]", "Display help"},
	{cmdQuit, "", "Exit the monitor"},
}
