package metrics

import (
	"fmt"
	"io"
)

// Print writes a human-readable report of s to w, in the teacher's
// section-header-then-key-value style.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Solve Summary ===")
	fmt.Fprintf(w, "Assigned Jobs        : %d\n", s.Assigned)
	fmt.Fprintf(w, "Unassigned Jobs      : %d\n", s.Unassigned)
	fmt.Fprintf(w, "Ignored Jobs         : %d\n", s.Ignored)
	fmt.Fprintf(w, "Locked Jobs          : %d\n", s.Locked)
	fmt.Fprintf(w, "Routes Used          : %d\n", s.RouteCount)
	fmt.Fprintf(w, "Total Cost           : %.2f\n", s.TotalCost)

	if len(s.UnassignedByCode) > 0 {
		fmt.Fprintln(w, "--- Unassigned by violation code ---")
		for code, count := range s.UnassignedByCode {
			fmt.Fprintf(w, "  code %d: %d\n", code, count)
		}
	}

	if s.RouteCount > 0 {
		fmt.Fprintln(w, "--- Per-route ---")
		for _, rs := range s.Routes {
			fmt.Fprintf(w, "  %-12s jobs=%-3d distance=%.1f duration=%.1f cost=%.2f load=%v\n",
				rs.ActorID, rs.Jobs, rs.Distance, rs.Duration, rs.Cost, rs.Load)
		}
	}

	if s.RouteCount > 1 {
		fmt.Fprintf(w, "Distance CV          : %.3f\n", s.DistanceCV)
		fmt.Fprintf(w, "Duration CV          : %.3f\n", s.DurationCV)
		fmt.Fprintf(w, "Load CV              : %.3f\n", s.LoadCV)
	}
}
