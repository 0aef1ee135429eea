package builder

import "time"

// saveTickMsg refreshes the autosave status line.
type saveTickMsg time.Time
