package script

import (
	"strconv"
	"strings"

	"github.com/kernel-sim/kernel-sim/kernel"
)

// ParseActivity turns one script line into an executable activity.
//
// Recognized forms:
//
//	CPU,<ticks>
//	FORK,<ignored>
//	EXEC <program>,<ignored>
//	SYSCALL,<device>  /  END_IO,<device>
//	IF_CHILD,<pid>  /  IF_PARENT,<pid>  /  ENDIF,<ignored>
//
// Malformed lines (fewer than two comma-separated fields, or a non-numeric
// value where one is required) become a Noop that is reported once and
// consumes no clock.
func ParseActivity(line string) kernel.Activity {
	name, valueField, ok := strings.Cut(line, ",")
	if !ok {
		return kernel.Noop{Line: line}
	}
	name = strings.TrimSpace(name)

	value := -1
	if v, err := strconv.Atoi(strings.TrimSpace(valueField)); err == nil {
		value = v
	}

	switch {
	case name == "CPU":
		if value < 0 {
			return kernel.Noop{Line: line}
		}
		return kernel.CPUBurst{Duration: int64(value)}

	case name == "FORK":
		return kernel.ForkCall{}

	case strings.HasPrefix(name, "EXEC "):
		program := strings.TrimSpace(strings.TrimPrefix(name, "EXEC "))
		if program == "" {
			return kernel.Noop{Line: line}
		}
		return kernel.ExecCall{Program: program}

	case name == "SYSCALL" || name == "END_IO":
		if value < 0 {
			return kernel.Noop{Line: line}
		}
		// Devices beyond the loaded tables flow through: the interrupt
		// subsystem reports them as out-of-range error trace lines.
		return kernel.DeviceInterrupt{Kind: name, Device: value}

	case name == "IF_CHILD":
		if value < 0 {
			return kernel.Noop{Line: line}
		}
		return kernel.IfChild{PID: value}

	case name == "IF_PARENT":
		if value < 0 {
			return kernel.Noop{Line: line}
		}
		return kernel.IfParent{PID: value}

	case name == "ENDIF":
		return kernel.EndIf{}
	}
	return kernel.Noop{Line: line}
}

// ParseScript parses all script lines in order.
func ParseScript(lines []string) []kernel.Activity {
	activities := make([]kernel.Activity, 0, len(lines))
	for _, line := range lines {
		activities = append(activities, ParseActivity(line))
	}
	return activities
}
