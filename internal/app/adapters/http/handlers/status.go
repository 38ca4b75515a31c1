package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"net/http"
	"runtime"
	"time"
)

// StatusHandler reports the run identity, the live counters and coarse
// process health in one document.
func (h *Handlers) StatusHandler(c *gin.Context) {
	uptime := time.Since(h.sess.StartedAt)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	percent, _ := cpu.Percent(0, false)
	if len(percent) == 0 {
		percent = append(percent, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"session": gin.H{
			"id":          h.sess.ID,
			"nick":        h.sess.Nick,
			"user":        h.sess.User,
			"pacing_seed": h.sess.PacingSeed,
			"started_at":  h.sess.StartedAt,
			"transcript":  h.transcript.Path(),
		},
		"stats": h.sess.Stats().Snapshot(),
		"runtime": gin.H{
			"uptime":      uptime.Truncate(time.Second).String(),
			"cpu_percent": percent[0],
			"mem_sys_mb":  m.Sys / 1024 / 1024,
		},
	})
}
