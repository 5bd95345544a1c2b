package screens

// Hard-coded sample values shown in the mock screenshots. They only
// need to look plausible next to the real UI.

type metricCard struct {
	Label   string
	Value   string
	Subtext string
}

var dashboardCards = []metricCard{
	{Label: "CPU Usage", Value: "42.3%", Subtext: "8 cores"},
	{Label: "Memory", Value: "68.5%", Subtext: "5.2GB / 8GB"},
	{Label: "Disk", Value: "45.2%", Subtext: "45GB / 100GB"},
	{Label: "Uptime", Value: "5d 3h", Subtext: "production-01"},
}

// navItems are the sidebar entries on desktop, in menu order.
var navItems = []string{"Dashboard", "Ports", "Services", "Processes", "Containers"}

// Ports table, narrow column set for mobile.
var (
	portColumnsMobile = []string{"Port", "Proto", "Address", "Process"}
	portRowsMobile    = [][]string{
		{"22", "TCP", "0.0.0.0", "sshd"},
		{"80", "TCP", "0.0.0.0", "nginx"},
		{"443", "TCP", "0.0.0.0", "nginx"},
		{"3000", "TCP", "127.0.0.1", "node"},
	}
)

// Ports table, full column set for desktop.
var (
	portColumnsDesktop = []string{"Port", "Protocol", "Address", "Process", "User", "State", "Context"}
	portRowsDesktop    = [][]string{
		{"22", "TCP", "0.0.0.0", "sshd", "root", "LISTEN", "⚙️ ssh.service"},
		{"80", "TCP", "0.0.0.0", "nginx", "www", "LISTEN", "📦 nginx-container"},
		{"443", "TCP", "0.0.0.0", "nginx", "www", "LISTEN", "📦 nginx-container"},
		{"3000", "TCP", "127.0.0.1", "node", "user", "LISTEN", ""},
	}
)
