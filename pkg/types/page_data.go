package types

type NavbarData struct {
	IsAuthenticated bool
	UserEmail       string
	UserName        string
	UserType        UserType
	UnreadCount     int
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Navbar NavbarData
	Toast  *Toast
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

func (d *BasePageData) SetToast(t *Toast) {
	d.Toast = t
}
