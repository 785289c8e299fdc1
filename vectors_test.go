package blake2s

// katInput returns the first n bytes of the incrementing byte sequence
// the official BLAKE2 known-answer tests are computed over.
func katInput(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i)
	}
	return buf
}

// katKey is the 32 byte key the keyed known-answer tests use.
var katKey = katInput(32)

var vectors = []struct {
	len  int
	hash string
}{
	{0, "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"},
	{1, "e34d74dbaf4ff4c6abd871cc220451d2ea2648846c7757fbaac82fe51ad64bea"},
	{2, "ddad9ab15dac4549ba42f49d262496bef6c0bae1dd342a8808f8ea267c6e210c"},
	{3, "e8f91c6ef232a041452ab0e149070cdd7dd1769e75b3a5921be37876c45c9900"},
	{31, "aba4ad9b480b9df3d08ca5e87b0c2440d4e4ea21224c2eb42cbae469d089b931"},
	{32, "05825607d7fdf2d82ef4c3c8c2aea961ad98d60edff7d018983e21204c0d93d1"},
	{33, "a742f8b6af82d8a6ca2357c5f1cf91defbd066267d75c048b352366585025962"},
	{63, "e57cb79487dd57902432b250733813bd96a84efce59f650fac26e6696aefafc3"},
	{64, "56f34e8b96557e90c1f24b52d0c89d51086acf1b00f634cf1dde9233b8eaaa3e"},
	{65, "1b53ee94aaf34e4b159d48de352c7f0661d0a40edff95a0b1639b4090e974472"},
	{127, "f18417b39d617ab1c18fdf91ebd0fc6d5516bb34cf39364037bce81fa04cecb1"},
	{128, "1fa877de67259d19863a2a34bcc6962a2b25fcbf5cbecd7ede8f1fa36688a796"},
	{129, "5bd169e67c82c2c2e98ef7008bdf261f2ddf30b1c00f9e7f275bb3e8a28dc9a2"},
	{192, "58d212ad6f58aef0f80116b441e57f6195bfef26b61463edec1183cdb04fe76d"},
	{255, "f03f5789d3336b80d002d59fdf918bdb775b00956ed5528e86aa994acb38fe2d"},
}

var keyedVectors = []struct {
	len  int
	hash string
}{
	{0, "48a8997da407876b3d79c0d92325ad3b89cbb754d86ab71aee047ad345fd2c49"},
	{1, "40d15fee7c328830166ac3f918650f807e7e01e177258cdc0a39b11f598066f1"},
	{33, "2c3e08176f760c6264c3a2cd66fec6c3d78de43fc192457b2a4a660a1e0eb22b"},
	{64, "8975b0577fd35566d750b362b0897a26c399136df07bababbde6203ff2954ed4"},
	{65, "21fe0ceb0052be7fb0f004187cacd7de67fa6eb0938d927677f2398c132317a8"},
	{128, "0c311f38c35a4fb90d651c289d486856cd1413df9b0677f53ece2cd9e477c60a"},
	{255, "3fb735061abc519dfe979e54c1ee5bfad0a9d858b3315bad34bde999efd724dd"},
}

var namedVectors = []struct {
	input string
	hash  string
}{
	{"", "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"},
	{"abc", "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982"},
	{"The quick brown fox jumps over the lazy dog", "606beeec743ccbeff6cbcdf5d5302aa855c256c29b88c8ed331ea1a6bf3c8812"},
}

// sizedVectors are truncated digests of "abc".
var sizedVectors = []struct {
	size int
	hash string
}{
	{1, "0d"},
	{16, "aa4938119b1dc7b87cbad0ffd200d0ae"},
	{20, "5ae3b99be29b01834c3b508521ede60438f8de17"},
	{28, "0b033fc226df7abde29f67a05d3dc62cf271ef3dfea4d387407fbd55"},
	{31, "6ffb901930ebaf1d3cabe0b60c20de3bc9dd26269325629f1671304fe6bb26"},
}
