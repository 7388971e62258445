// vpnman - menu-bar toggle for scutil-managed VPN configurations
package main

import "github.com/ubahwin/vpnman/internal/ui"

func main() {
	ui.Run()
}
