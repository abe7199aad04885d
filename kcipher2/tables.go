// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package kcipher2

// Multiplication and substitution tables for the KCipher-2 round functions.
// The alpha tables realize multiplication by fixed elements of GF(2^32),
// indexed by the top byte of the operand. The sbox tables fold the AES byte
// substitution and the MDS mixing matrix into one 32-bit lookup per input
// byte. The values are fixed by the cipher specification.

// alpha0: multiplication by alpha_0.
var alpha0 = [256]uint32{
	0x00000000, 0xb6086d1a, 0xaf10da34, 0x1918b72e,
	0x9d207768, 0x2b281a72, 0x3230ad5c, 0x8438c046,
	0xf940eed0, 0x4f4883ca, 0x565034e4, 0xe05859fe,
	0x646099b8, 0xd268f4a2, 0xcb70438c, 0x7d782e96,
	0x31801f63, 0x87887279, 0x9e90c557, 0x2898a84d,
	0xaca0680b, 0x1aa80511, 0x03b0b23f, 0xb5b8df25,
	0xc8c0f1b3, 0x7ec89ca9, 0x67d02b87, 0xd1d8469d,
	0x55e086db, 0xe3e8ebc1, 0xfaf05cef, 0x4cf831f5,
	0x62c33ec6, 0xd4cb53dc, 0xcdd3e4f2, 0x7bdb89e8,
	0xffe349ae, 0x49eb24b4, 0x50f3939a, 0xe6fbfe80,
	0x9b83d016, 0x2d8bbd0c, 0x34930a22, 0x829b6738,
	0x06a3a77e, 0xb0abca64, 0xa9b37d4a, 0x1fbb1050,
	0x534321a5, 0xe54b4cbf, 0xfc53fb91, 0x4a5b968b,
	0xce6356cd, 0x786b3bd7, 0x61738cf9, 0xd77be1e3,
	0xaa03cf75, 0x1c0ba26f, 0x05131541, 0xb31b785b,
	0x3723b81d, 0x812bd507, 0x98336229, 0x2e3b0f33,
	0xc4457c4f, 0x724d1155, 0x6b55a67b, 0xdd5dcb61,
	0x59650b27, 0xef6d663d, 0xf675d113, 0x407dbc09,
	0x3d05929f, 0x8b0dff85, 0x921548ab, 0x241d25b1,
	0xa025e5f7, 0x162d88ed, 0x0f353fc3, 0xb93d52d9,
	0xf5c5632c, 0x43cd0e36, 0x5ad5b918, 0xecddd402,
	0x68e51444, 0xdeed795e, 0xc7f5ce70, 0x71fda36a,
	0x0c858dfc, 0xba8de0e6, 0xa39557c8, 0x159d3ad2,
	0x91a5fa94, 0x27ad978e, 0x3eb520a0, 0x88bd4dba,
	0xa6864289, 0x108e2f93, 0x099698bd, 0xbf9ef5a7,
	0x3ba635e1, 0x8dae58fb, 0x94b6efd5, 0x22be82cf,
	0x5fc6ac59, 0xe9cec143, 0xf0d6766d, 0x46de1b77,
	0xc2e6db31, 0x74eeb62b, 0x6df60105, 0xdbfe6c1f,
	0x97065dea, 0x210e30f0, 0x381687de, 0x8e1eeac4,
	0x0a262a82, 0xbc2e4798, 0xa536f0b6, 0x133e9dac,
	0x6e46b33a, 0xd84ede20, 0xc156690e, 0x775e0414,
	0xf366c452, 0x456ea948, 0x5c761e66, 0xea7e737c,
	0x4b8af89e, 0xfd829584, 0xe49a22aa, 0x52924fb0,
	0xd6aa8ff6, 0x60a2e2ec, 0x79ba55c2, 0xcfb238d8,
	0xb2ca164e, 0x04c27b54, 0x1ddacc7a, 0xabd2a160,
	0x2fea6126, 0x99e20c3c, 0x80fabb12, 0x36f2d608,
	0x7a0ae7fd, 0xcc028ae7, 0xd51a3dc9, 0x631250d3,
	0xe72a9095, 0x5122fd8f, 0x483a4aa1, 0xfe3227bb,
	0x834a092d, 0x35426437, 0x2c5ad319, 0x9a52be03,
	0x1e6a7e45, 0xa862135f, 0xb17aa471, 0x0772c96b,
	0x2949c658, 0x9f41ab42, 0x86591c6c, 0x30517176,
	0xb469b130, 0x0261dc2a, 0x1b796b04, 0xad71061e,
	0xd0092888, 0x66014592, 0x7f19f2bc, 0xc9119fa6,
	0x4d295fe0, 0xfb2132fa, 0xe23985d4, 0x5431e8ce,
	0x18c9d93b, 0xaec1b421, 0xb7d9030f, 0x01d16e15,
	0x85e9ae53, 0x33e1c349, 0x2af97467, 0x9cf1197d,
	0xe18937eb, 0x57815af1, 0x4e99eddf, 0xf89180c5,
	0x7ca94083, 0xcaa12d99, 0xd3b99ab7, 0x65b1f7ad,
	0x8fcf84d1, 0x39c7e9cb, 0x20df5ee5, 0x96d733ff,
	0x12eff3b9, 0xa4e79ea3, 0xbdff298d, 0x0bf74497,
	0x768f6a01, 0xc087071b, 0xd99fb035, 0x6f97dd2f,
	0xebaf1d69, 0x5da77073, 0x44bfc75d, 0xf2b7aa47,
	0xbe4f9bb2, 0x0847f6a8, 0x115f4186, 0xa7572c9c,
	0x236fecda, 0x956781c0, 0x8c7f36ee, 0x3a775bf4,
	0x470f7562, 0xf1071878, 0xe81faf56, 0x5e17c24c,
	0xda2f020a, 0x6c276f10, 0x753fd83e, 0xc337b524,
	0xed0cba17, 0x5b04d70d, 0x421c6023, 0xf4140d39,
	0x702ccd7f, 0xc624a065, 0xdf3c174b, 0x69347a51,
	0x144c54c7, 0xa24439dd, 0xbb5c8ef3, 0x0d54e3e9,
	0x896c23af, 0x3f644eb5, 0x267cf99b, 0x90749481,
	0xdc8ca574, 0x6a84c86e, 0x739c7f40, 0xc594125a,
	0x41acd21c, 0xf7a4bf06, 0xeebc0828, 0x58b46532,
	0x25cc4ba4, 0x93c426be, 0x8adc9190, 0x3cd4fc8a,
	0xb8ec3ccc, 0x0ee451d6, 0x17fce6f8, 0xa1f48be2,
}

// alpha1: multiplication by alpha_1.
var alpha1 = [256]uint32{
	0x00000000, 0xa0f5fc2e, 0x6dc7d55c, 0xcd322972,
	0xdaa387b8, 0x7a567b96, 0xb76452e4, 0x1791aeca,
	0x996b235d, 0x399edf73, 0xf4acf601, 0x54590a2f,
	0x43c8a4e5, 0xe33d58cb, 0x2e0f71b9, 0x8efa8d97,
	0x1fd646ba, 0xbf23ba94, 0x721193e6, 0xd2e46fc8,
	0xc575c102, 0x65803d2c, 0xa8b2145e, 0x0847e870,
	0x86bd65e7, 0x264899c9, 0xeb7ab0bb, 0x4b8f4c95,
	0x5c1ee25f, 0xfceb1e71, 0x31d93703, 0x912ccb2d,
	0x3e818c59, 0x9e747077, 0x53465905, 0xf3b3a52b,
	0xe4220be1, 0x44d7f7cf, 0x89e5debd, 0x29102293,
	0xa7eaaf04, 0x071f532a, 0xca2d7a58, 0x6ad88676,
	0x7d4928bc, 0xddbcd492, 0x108efde0, 0xb07b01ce,
	0x2157cae3, 0x81a236cd, 0x4c901fbf, 0xec65e391,
	0xfbf44d5b, 0x5b01b175, 0x96339807, 0x36c66429,
	0xb83ce9be, 0x18c91590, 0xd5fb3ce2, 0x750ec0cc,
	0x629f6e06, 0xc26a9228, 0x0f58bb5a, 0xafad4774,
	0x7c2f35b2, 0xdcdac99c, 0x11e8e0ee, 0xb11d1cc0,
	0xa68cb20a, 0x06794e24, 0xcb4b6756, 0x6bbe9b78,
	0xe54416ef, 0x45b1eac1, 0x8883c3b3, 0x28763f9d,
	0x3fe79157, 0x9f126d79, 0x5220440b, 0xf2d5b825,
	0x63f97308, 0xc30c8f26, 0x0e3ea654, 0xaecb5a7a,
	0xb95af4b0, 0x19af089e, 0xd49d21ec, 0x7468ddc2,
	0xfa925055, 0x5a67ac7b, 0x97558509, 0x37a07927,
	0x2031d7ed, 0x80c42bc3, 0x4df602b1, 0xed03fe9f,
	0x42aeb9eb, 0xe25b45c5, 0x2f696cb7, 0x8f9c9099,
	0x980d3e53, 0x38f8c27d, 0xf5caeb0f, 0x553f1721,
	0xdbc59ab6, 0x7b306698, 0xb6024fea, 0x16f7b3c4,
	0x01661d0e, 0xa193e120, 0x6ca1c852, 0xcc54347c,
	0x5d78ff51, 0xfd8d037f, 0x30bf2a0d, 0x904ad623,
	0x87db78e9, 0x272e84c7, 0xea1cadb5, 0x4ae9519b,
	0xc413dc0c, 0x64e62022, 0xa9d40950, 0x0921f57e,
	0x1eb05bb4, 0xbe45a79a, 0x73778ee8, 0xd38272c6,
	0xf85e6a49, 0x58ab9667, 0x9599bf15, 0x356c433b,
	0x22fdedf1, 0x820811df, 0x4f3a38ad, 0xefcfc483,
	0x61354914, 0xc1c0b53a, 0x0cf29c48, 0xac076066,
	0xbb96ceac, 0x1b633282, 0xd6511bf0, 0x76a4e7de,
	0xe7882cf3, 0x477dd0dd, 0x8a4ff9af, 0x2aba0581,
	0x3d2bab4b, 0x9dde5765, 0x50ec7e17, 0xf0198239,
	0x7ee30fae, 0xde16f380, 0x1324daf2, 0xb3d126dc,
	0xa4408816, 0x04b57438, 0xc9875d4a, 0x6972a164,
	0xc6dfe610, 0x662a1a3e, 0xab18334c, 0x0bedcf62,
	0x1c7c61a8, 0xbc899d86, 0x71bbb4f4, 0xd14e48da,
	0x5fb4c54d, 0xff413963, 0x32731011, 0x9286ec3f,
	0x851742f5, 0x25e2bedb, 0xe8d097a9, 0x48256b87,
	0xd909a0aa, 0x79fc5c84, 0xb4ce75f6, 0x143b89d8,
	0x03aa2712, 0xa35fdb3c, 0x6e6df24e, 0xce980e60,
	0x406283f7, 0xe0977fd9, 0x2da556ab, 0x8d50aa85,
	0x9ac1044f, 0x3a34f861, 0xf706d113, 0x57f32d3d,
	0x84715ffb, 0x2484a3d5, 0xe9b68aa7, 0x49437689,
	0x5ed2d843, 0xfe27246d, 0x33150d1f, 0x93e0f131,
	0x1d1a7ca6, 0xbdef8088, 0x70dda9fa, 0xd02855d4,
	0xc7b9fb1e, 0x674c0730, 0xaa7e2e42, 0x0a8bd26c,
	0x9ba71941, 0x3b52e56f, 0xf660cc1d, 0x56953033,
	0x41049ef9, 0xe1f162d7, 0x2cc34ba5, 0x8c36b78b,
	0x02cc3a1c, 0xa239c632, 0x6f0bef40, 0xcffe136e,
	0xd86fbda4, 0x789a418a, 0xb5a868f8, 0x155d94d6,
	0xbaf0d3a2, 0x1a052f8c, 0xd73706fe, 0x77c2fad0,
	0x6053541a, 0xc0a6a834, 0x0d948146, 0xad617d68,
	0x239bf0ff, 0x836e0cd1, 0x4e5c25a3, 0xeea9d98d,
	0xf9387747, 0x59cd8b69, 0x94ffa21b, 0x340a5e35,
	0xa5269518, 0x05d36936, 0xc8e14044, 0x6814bc6a,
	0x7f8512a0, 0xdf70ee8e, 0x1242c7fc, 0xb2b73bd2,
	0x3c4db645, 0x9cb84a6b, 0x518a6319, 0xf17f9f37,
	0xe6ee31fd, 0x461bcdd3, 0x8b29e4a1, 0x2bdc188f,
}

// alpha2: multiplication by alpha_2.
var alpha2 = [256]uint32{
	0x00000000, 0x5bf87f93, 0xb6bdfe6b, 0xed4581f8,
	0x2137b1d6, 0x7acfce45, 0x978a4fbd, 0xcc72302e,
	0x426e2fe1, 0x19965072, 0xf4d3d18a, 0xaf2bae19,
	0x63599e37, 0x38a1e1a4, 0xd5e4605c, 0x8e1c1fcf,
	0x84dc5e8f, 0xdf24211c, 0x3261a0e4, 0x6999df77,
	0xa5ebef59, 0xfe1390ca, 0x13561132, 0x48ae6ea1,
	0xc6b2716e, 0x9d4a0efd, 0x700f8f05, 0x2bf7f096,
	0xe785c0b8, 0xbc7dbf2b, 0x51383ed3, 0x0ac04140,
	0x45f5bc53, 0x1e0dc3c0, 0xf3484238, 0xa8b03dab,
	0x64c20d85, 0x3f3a7216, 0xd27ff3ee, 0x89878c7d,
	0x079b93b2, 0x5c63ec21, 0xb1266dd9, 0xeade124a,
	0x26ac2264, 0x7d545df7, 0x9011dc0f, 0xcbe9a39c,
	0xc129e2dc, 0x9ad19d4f, 0x77941cb7, 0x2c6c6324,
	0xe01e530a, 0xbbe62c99, 0x56a3ad61, 0x0d5bd2f2,
	0x8347cd3d, 0xd8bfb2ae, 0x35fa3356, 0x6e024cc5,
	0xa2707ceb, 0xf9880378, 0x14cd8280, 0x4f35fd13,
	0x8aa735a6, 0xd15f4a35, 0x3c1acbcd, 0x67e2b45e,
	0xab908470, 0xf068fbe3, 0x1d2d7a1b, 0x46d50588,
	0xc8c91a47, 0x933165d4, 0x7e74e42c, 0x258c9bbf,
	0xe9feab91, 0xb206d402, 0x5f4355fa, 0x04bb2a69,
	0x0e7b6b29, 0x558314ba, 0xb8c69542, 0xe33eead1,
	0x2f4cdaff, 0x74b4a56c, 0x99f12494, 0xc2095b07,
	0x4c1544c8, 0x17ed3b5b, 0xfaa8baa3, 0xa150c530,
	0x6d22f51e, 0x36da8a8d, 0xdb9f0b75, 0x806774e6,
	0xcf5289f5, 0x94aaf666, 0x79ef779e, 0x2217080d,
	0xee653823, 0xb59d47b0, 0x58d8c648, 0x0320b9db,
	0x8d3ca614, 0xd6c4d987, 0x3b81587f, 0x607927ec,
	0xac0b17c2, 0xf7f36851, 0x1ab6e9a9, 0x414e963a,
	0x4b8ed77a, 0x1076a8e9, 0xfd332911, 0xa6cb5682,
	0x6ab966ac, 0x3141193f, 0xdc0498c7, 0x87fce754,
	0x09e0f89b, 0x52188708, 0xbf5d06f0, 0xe4a57963,
	0x28d7494d, 0x732f36de, 0x9e6ab726, 0xc592c8b5,
	0x59036a01, 0x02fb1592, 0xefbe946a, 0xb446ebf9,
	0x7834dbd7, 0x23cca444, 0xce8925bc, 0x95715a2f,
	0x1b6d45e0, 0x40953a73, 0xadd0bb8b, 0xf628c418,
	0x3a5af436, 0x61a28ba5, 0x8ce70a5d, 0xd71f75ce,
	0xdddf348e, 0x86274b1d, 0x6b62cae5, 0x309ab576,
	0xfce88558, 0xa710facb, 0x4a557b33, 0x11ad04a0,
	0x9fb11b6f, 0xc44964fc, 0x290ce504, 0x72f49a97,
	0xbe86aab9, 0xe57ed52a, 0x083b54d2, 0x53c32b41,
	0x1cf6d652, 0x470ea9c1, 0xaa4b2839, 0xf1b357aa,
	0x3dc16784, 0x66391817, 0x8b7c99ef, 0xd084e67c,
	0x5e98f9b3, 0x05608620, 0xe82507d8, 0xb3dd784b,
	0x7faf4865, 0x245737f6, 0xc912b60e, 0x92eac99d,
	0x982a88dd, 0xc3d2f74e, 0x2e9776b6, 0x756f0925,
	0xb91d390b, 0xe2e54698, 0x0fa0c760, 0x5458b8f3,
	0xda44a73c, 0x81bcd8af, 0x6cf95957, 0x370126c4,
	0xfb7316ea, 0xa08b6979, 0x4dcee881, 0x16369712,
	0xd3a45fa7, 0x885c2034, 0x6519a1cc, 0x3ee1de5f,
	0xf293ee71, 0xa96b91e2, 0x442e101a, 0x1fd66f89,
	0x91ca7046, 0xca320fd5, 0x27778e2d, 0x7c8ff1be,
	0xb0fdc190, 0xeb05be03, 0x06403ffb, 0x5db84068,
	0x57780128, 0x0c807ebb, 0xe1c5ff43, 0xba3d80d0,
	0x764fb0fe, 0x2db7cf6d, 0xc0f24e95, 0x9b0a3106,
	0x15162ec9, 0x4eee515a, 0xa3abd0a2, 0xf853af31,
	0x34219f1f, 0x6fd9e08c, 0x829c6174, 0xd9641ee7,
	0x9651e3f4, 0xcda99c67, 0x20ec1d9f, 0x7b14620c,
	0xb7665222, 0xec9e2db1, 0x01dbac49, 0x5a23d3da,
	0xd43fcc15, 0x8fc7b386, 0x6282327e, 0x397a4ded,
	0xf5087dc3, 0xaef00250, 0x43b583a8, 0x184dfc3b,
	0x128dbd7b, 0x4975c2e8, 0xa4304310, 0xffc83c83,
	0x33ba0cad, 0x6842733e, 0x8507f2c6, 0xdeff8d55,
	0x50e3929a, 0x0b1bed09, 0xe65e6cf1, 0xbda61362,
	0x71d4234c, 0x2a2c5cdf, 0xc769dd27, 0x9c91a2b4,
}

// alpha3: multiplication by alpha_3.
var alpha3 = [256]uint32{
	0x00000000, 0x4559568b, 0x8ab2ac73, 0xcfebfaf8,
	0x71013de6, 0x34586b6d, 0xfbb39195, 0xbeeac71e,
	0xe2027aa9, 0xa75b2c22, 0x68b0d6da, 0x2de98051,
	0x9303474f, 0xd65a11c4, 0x19b1eb3c, 0x5ce8bdb7,
	0xa104f437, 0xe45da2bc, 0x2bb65844, 0x6eef0ecf,
	0xd005c9d1, 0x955c9f5a, 0x5ab765a2, 0x1fee3329,
	0x43068e9e, 0x065fd815, 0xc9b422ed, 0x8ced7466,
	0x3207b378, 0x775ee5f3, 0xb8b51f0b, 0xfdec4980,
	0x27088d6e, 0x6251dbe5, 0xadba211d, 0xe8e37796,
	0x5609b088, 0x1350e603, 0xdcbb1cfb, 0x99e24a70,
	0xc50af7c7, 0x8053a14c, 0x4fb85bb4, 0x0ae10d3f,
	0xb40bca21, 0xf1529caa, 0x3eb96652, 0x7be030d9,
	0x860c7959, 0xc3552fd2, 0x0cbed52a, 0x49e783a1,
	0xf70d44bf, 0xb2541234, 0x7dbfe8cc, 0x38e6be47,
	0x640e03f0, 0x2157557b, 0xeebcaf83, 0xabe5f908,
	0x150f3e16, 0x5056689d, 0x9fbd9265, 0xdae4c4ee,
	0x4e107fdc, 0x0b492957, 0xc4a2d3af, 0x81fb8524,
	0x3f11423a, 0x7a4814b1, 0xb5a3ee49, 0xf0fab8c2,
	0xac120575, 0xe94b53fe, 0x26a0a906, 0x63f9ff8d,
	0xdd133893, 0x984a6e18, 0x57a194e0, 0x12f8c26b,
	0xef148beb, 0xaa4ddd60, 0x65a62798, 0x20ff7113,
	0x9e15b60d, 0xdb4ce086, 0x14a71a7e, 0x51fe4cf5,
	0x0d16f142, 0x484fa7c9, 0x87a45d31, 0xc2fd0bba,
	0x7c17cca4, 0x394e9a2f, 0xf6a560d7, 0xb3fc365c,
	0x6918f2b2, 0x2c41a439, 0xe3aa5ec1, 0xa6f3084a,
	0x1819cf54, 0x5d4099df, 0x92ab6327, 0xd7f235ac,
	0x8b1a881b, 0xce43de90, 0x01a82468, 0x44f172e3,
	0xfa1bb5fd, 0xbf42e376, 0x70a9198e, 0x35f04f05,
	0xc81c0685, 0x8d45500e, 0x42aeaaf6, 0x07f7fc7d,
	0xb91d3b63, 0xfc446de8, 0x33af9710, 0x76f6c19b,
	0x2a1e7c2c, 0x6f472aa7, 0xa0acd05f, 0xe5f586d4,
	0x5b1f41ca, 0x1e461741, 0xd1adedb9, 0x94f4bb32,
	0x9c20fedd, 0xd979a856, 0x169252ae, 0x53cb0425,
	0xed21c33b, 0xa87895b0, 0x67936f48, 0x22ca39c3,
	0x7e228474, 0x3b7bd2ff, 0xf4902807, 0xb1c97e8c,
	0x0f23b992, 0x4a7aef19, 0x859115e1, 0xc0c8436a,
	0x3d240aea, 0x787d5c61, 0xb796a699, 0xf2cff012,
	0x4c25370c, 0x097c6187, 0xc6979b7f, 0x83cecdf4,
	0xdf267043, 0x9a7f26c8, 0x5594dc30, 0x10cd8abb,
	0xae274da5, 0xeb7e1b2e, 0x2495e1d6, 0x61ccb75d,
	0xbb2873b3, 0xfe712538, 0x319adfc0, 0x74c3894b,
	0xca294e55, 0x8f7018de, 0x409be226, 0x05c2b4ad,
	0x592a091a, 0x1c735f91, 0xd398a569, 0x96c1f3e2,
	0x282b34fc, 0x6d726277, 0xa299988f, 0xe7c0ce04,
	0x1a2c8784, 0x5f75d10f, 0x909e2bf7, 0xd5c77d7c,
	0x6b2dba62, 0x2e74ece9, 0xe19f1611, 0xa4c6409a,
	0xf82efd2d, 0xbd77aba6, 0x729c515e, 0x37c507d5,
	0x892fc0cb, 0xcc769640, 0x039d6cb8, 0x46c43a33,
	0xd2308101, 0x9769d78a, 0x58822d72, 0x1ddb7bf9,
	0xa331bce7, 0xe668ea6c, 0x29831094, 0x6cda461f,
	0x3032fba8, 0x756bad23, 0xba8057db, 0xffd90150,
	0x4133c64e, 0x046a90c5, 0xcb816a3d, 0x8ed83cb6,
	0x73347536, 0x366d23bd, 0xf986d945, 0xbcdf8fce,
	0x023548d0, 0x476c1e5b, 0x8887e4a3, 0xcddeb228,
	0x91360f9f, 0xd46f5914, 0x1b84a3ec, 0x5eddf567,
	0xe0373279, 0xa56e64f2, 0x6a859e0a, 0x2fdcc881,
	0xf5380c6f, 0xb0615ae4, 0x7f8aa01c, 0x3ad3f697,
	0x84393189, 0xc1606702, 0x0e8b9dfa, 0x4bd2cb71,
	0x173a76c6, 0x5263204d, 0x9d88dab5, 0xd8d18c3e,
	0x663b4b20, 0x23621dab, 0xec89e753, 0xa9d0b1d8,
	0x543cf858, 0x1165aed3, 0xde8e542b, 0x9bd702a0,
	0x253dc5be, 0x60649335, 0xaf8f69cd, 0xead63f46,
	0xb63e82f1, 0xf367d47a, 0x3c8c2e82, 0x79d57809,
	0xc73fbf17, 0x8266e99c, 0x4d8d1364, 0x08d445ef,
}

// sbox0: substitution + MDS, byte position 0.
var sbox0 = [256]uint32{
	0xa56363c6, 0x847c7cf8, 0x997777ee, 0x8d7b7bf6,
	0x0df2f2ff, 0xbd6b6bd6, 0xb16f6fde, 0x54c5c591,
	0x50303060, 0x03010102, 0xa96767ce, 0x7d2b2b56,
	0x19fefee7, 0x62d7d7b5, 0xe6abab4d, 0x9a7676ec,
	0x45caca8f, 0x9d82821f, 0x40c9c989, 0x877d7dfa,
	0x15fafaef, 0xeb5959b2, 0xc947478e, 0x0bf0f0fb,
	0xecadad41, 0x67d4d4b3, 0xfda2a25f, 0xeaafaf45,
	0xbf9c9c23, 0xf7a4a453, 0x967272e4, 0x5bc0c09b,
	0xc2b7b775, 0x1cfdfde1, 0xae93933d, 0x6a26264c,
	0x5a36366c, 0x413f3f7e, 0x02f7f7f5, 0x4fcccc83,
	0x5c343468, 0xf4a5a551, 0x34e5e5d1, 0x08f1f1f9,
	0x937171e2, 0x73d8d8ab, 0x53313162, 0x3f15152a,
	0x0c040408, 0x52c7c795, 0x65232346, 0x5ec3c39d,
	0x28181830, 0xa1969637, 0x0f05050a, 0xb59a9a2f,
	0x0907070e, 0x36121224, 0x9b80801b, 0x3de2e2df,
	0x26ebebcd, 0x6927274e, 0xcdb2b27f, 0x9f7575ea,
	0x1b090912, 0x9e83831d, 0x742c2c58, 0x2e1a1a34,
	0x2d1b1b36, 0xb26e6edc, 0xee5a5ab4, 0xfba0a05b,
	0xf65252a4, 0x4d3b3b76, 0x61d6d6b7, 0xceb3b37d,
	0x7b292952, 0x3ee3e3dd, 0x712f2f5e, 0x97848413,
	0xf55353a6, 0x68d1d1b9, 0x00000000, 0x2cededc1,
	0x60202040, 0x1ffcfce3, 0xc8b1b179, 0xed5b5bb6,
	0xbe6a6ad4, 0x46cbcb8d, 0xd9bebe67, 0x4b393972,
	0xde4a4a94, 0xd44c4c98, 0xe85858b0, 0x4acfcf85,
	0x6bd0d0bb, 0x2aefefc5, 0xe5aaaa4f, 0x16fbfbed,
	0xc5434386, 0xd74d4d9a, 0x55333366, 0x94858511,
	0xcf45458a, 0x10f9f9e9, 0x06020204, 0x817f7ffe,
	0xf05050a0, 0x443c3c78, 0xba9f9f25, 0xe3a8a84b,
	0xf35151a2, 0xfea3a35d, 0xc0404080, 0x8a8f8f05,
	0xad92923f, 0xbc9d9d21, 0x48383870, 0x04f5f5f1,
	0xdfbcbc63, 0xc1b6b677, 0x75dadaaf, 0x63212142,
	0x30101020, 0x1affffe5, 0x0ef3f3fd, 0x6dd2d2bf,
	0x4ccdcd81, 0x140c0c18, 0x35131326, 0x2fececc3,
	0xe15f5fbe, 0xa2979735, 0xcc444488, 0x3917172e,
	0x57c4c493, 0xf2a7a755, 0x827e7efc, 0x473d3d7a,
	0xac6464c8, 0xe75d5dba, 0x2b191932, 0x957373e6,
	0xa06060c0, 0x98818119, 0xd14f4f9e, 0x7fdcdca3,
	0x66222244, 0x7e2a2a54, 0xab90903b, 0x8388880b,
	0xca46468c, 0x29eeeec7, 0xd3b8b86b, 0x3c141428,
	0x79dedea7, 0xe25e5ebc, 0x1d0b0b16, 0x76dbdbad,
	0x3be0e0db, 0x56323264, 0x4e3a3a74, 0x1e0a0a14,
	0xdb494992, 0x0a06060c, 0x6c242448, 0xe45c5cb8,
	0x5dc2c29f, 0x6ed3d3bd, 0xefacac43, 0xa66262c4,
	0xa8919139, 0xa4959531, 0x37e4e4d3, 0x8b7979f2,
	0x32e7e7d5, 0x43c8c88b, 0x5937376e, 0xb76d6dda,
	0x8c8d8d01, 0x64d5d5b1, 0xd24e4e9c, 0xe0a9a949,
	0xb46c6cd8, 0xfa5656ac, 0x07f4f4f3, 0x25eaeacf,
	0xaf6565ca, 0x8e7a7af4, 0xe9aeae47, 0x18080810,
	0xd5baba6f, 0x887878f0, 0x6f25254a, 0x722e2e5c,
	0x241c1c38, 0xf1a6a657, 0xc7b4b473, 0x51c6c697,
	0x23e8e8cb, 0x7cdddda1, 0x9c7474e8, 0x211f1f3e,
	0xdd4b4b96, 0xdcbdbd61, 0x868b8b0d, 0x858a8a0f,
	0x907070e0, 0x423e3e7c, 0xc4b5b571, 0xaa6666cc,
	0xd8484890, 0x05030306, 0x01f6f6f7, 0x120e0e1c,
	0xa36161c2, 0x5f35356a, 0xf95757ae, 0xd0b9b969,
	0x91868617, 0x58c1c199, 0x271d1d3a, 0xb99e9e27,
	0x38e1e1d9, 0x13f8f8eb, 0xb398982b, 0x33111122,
	0xbb6969d2, 0x70d9d9a9, 0x898e8e07, 0xa7949433,
	0xb69b9b2d, 0x221e1e3c, 0x92878715, 0x20e9e9c9,
	0x49cece87, 0xff5555aa, 0x78282850, 0x7adfdfa5,
	0x8f8c8c03, 0xf8a1a159, 0x80898909, 0x170d0d1a,
	0xdabfbf65, 0x31e6e6d7, 0xc6424284, 0xb86868d0,
	0xc3414182, 0xb0999929, 0x772d2d5a, 0x110f0f1e,
	0xcbb0b07b, 0xfc5454a8, 0xd6bbbb6d, 0x3a16162c,
}

// sbox1: substitution + MDS, byte position 1.
var sbox1 = [256]uint32{
	0x6363c6a5, 0x7c7cf884, 0x7777ee99, 0x7b7bf68d,
	0xf2f2ff0d, 0x6b6bd6bd, 0x6f6fdeb1, 0xc5c59154,
	0x30306050, 0x01010203, 0x6767cea9, 0x2b2b567d,
	0xfefee719, 0xd7d7b562, 0xabab4de6, 0x7676ec9a,
	0xcaca8f45, 0x82821f9d, 0xc9c98940, 0x7d7dfa87,
	0xfafaef15, 0x5959b2eb, 0x47478ec9, 0xf0f0fb0b,
	0xadad41ec, 0xd4d4b367, 0xa2a25ffd, 0xafaf45ea,
	0x9c9c23bf, 0xa4a453f7, 0x7272e496, 0xc0c09b5b,
	0xb7b775c2, 0xfdfde11c, 0x93933dae, 0x26264c6a,
	0x36366c5a, 0x3f3f7e41, 0xf7f7f502, 0xcccc834f,
	0x3434685c, 0xa5a551f4, 0xe5e5d134, 0xf1f1f908,
	0x7171e293, 0xd8d8ab73, 0x31316253, 0x15152a3f,
	0x0404080c, 0xc7c79552, 0x23234665, 0xc3c39d5e,
	0x18183028, 0x969637a1, 0x05050a0f, 0x9a9a2fb5,
	0x07070e09, 0x12122436, 0x80801b9b, 0xe2e2df3d,
	0xebebcd26, 0x27274e69, 0xb2b27fcd, 0x7575ea9f,
	0x0909121b, 0x83831d9e, 0x2c2c5874, 0x1a1a342e,
	0x1b1b362d, 0x6e6edcb2, 0x5a5ab4ee, 0xa0a05bfb,
	0x5252a4f6, 0x3b3b764d, 0xd6d6b761, 0xb3b37dce,
	0x2929527b, 0xe3e3dd3e, 0x2f2f5e71, 0x84841397,
	0x5353a6f5, 0xd1d1b968, 0x00000000, 0xededc12c,
	0x20204060, 0xfcfce31f, 0xb1b179c8, 0x5b5bb6ed,
	0x6a6ad4be, 0xcbcb8d46, 0xbebe67d9, 0x3939724b,
	0x4a4a94de, 0x4c4c98d4, 0x5858b0e8, 0xcfcf854a,
	0xd0d0bb6b, 0xefefc52a, 0xaaaa4fe5, 0xfbfbed16,
	0x434386c5, 0x4d4d9ad7, 0x33336655, 0x85851194,
	0x45458acf, 0xf9f9e910, 0x02020406, 0x7f7ffe81,
	0x5050a0f0, 0x3c3c7844, 0x9f9f25ba, 0xa8a84be3,
	0x5151a2f3, 0xa3a35dfe, 0x404080c0, 0x8f8f058a,
	0x92923fad, 0x9d9d21bc, 0x38387048, 0xf5f5f104,
	0xbcbc63df, 0xb6b677c1, 0xdadaaf75, 0x21214263,
	0x10102030, 0xffffe51a, 0xf3f3fd0e, 0xd2d2bf6d,
	0xcdcd814c, 0x0c0c1814, 0x13132635, 0xececc32f,
	0x5f5fbee1, 0x979735a2, 0x444488cc, 0x17172e39,
	0xc4c49357, 0xa7a755f2, 0x7e7efc82, 0x3d3d7a47,
	0x6464c8ac, 0x5d5dbae7, 0x1919322b, 0x7373e695,
	0x6060c0a0, 0x81811998, 0x4f4f9ed1, 0xdcdca37f,
	0x22224466, 0x2a2a547e, 0x90903bab, 0x88880b83,
	0x46468cca, 0xeeeec729, 0xb8b86bd3, 0x1414283c,
	0xdedea779, 0x5e5ebce2, 0x0b0b161d, 0xdbdbad76,
	0xe0e0db3b, 0x32326456, 0x3a3a744e, 0x0a0a141e,
	0x494992db, 0x06060c0a, 0x2424486c, 0x5c5cb8e4,
	0xc2c29f5d, 0xd3d3bd6e, 0xacac43ef, 0x6262c4a6,
	0x919139a8, 0x959531a4, 0xe4e4d337, 0x7979f28b,
	0xe7e7d532, 0xc8c88b43, 0x37376e59, 0x6d6ddab7,
	0x8d8d018c, 0xd5d5b164, 0x4e4e9cd2, 0xa9a949e0,
	0x6c6cd8b4, 0x5656acfa, 0xf4f4f307, 0xeaeacf25,
	0x6565caaf, 0x7a7af48e, 0xaeae47e9, 0x08081018,
	0xbaba6fd5, 0x7878f088, 0x25254a6f, 0x2e2e5c72,
	0x1c1c3824, 0xa6a657f1, 0xb4b473c7, 0xc6c69751,
	0xe8e8cb23, 0xdddda17c, 0x7474e89c, 0x1f1f3e21,
	0x4b4b96dd, 0xbdbd61dc, 0x8b8b0d86, 0x8a8a0f85,
	0x7070e090, 0x3e3e7c42, 0xb5b571c4, 0x6666ccaa,
	0x484890d8, 0x03030605, 0xf6f6f701, 0x0e0e1c12,
	0x6161c2a3, 0x35356a5f, 0x5757aef9, 0xb9b969d0,
	0x86861791, 0xc1c19958, 0x1d1d3a27, 0x9e9e27b9,
	0xe1e1d938, 0xf8f8eb13, 0x98982bb3, 0x11112233,
	0x6969d2bb, 0xd9d9a970, 0x8e8e0789, 0x949433a7,
	0x9b9b2db6, 0x1e1e3c22, 0x87871592, 0xe9e9c920,
	0xcece8749, 0x5555aaff, 0x28285078, 0xdfdfa57a,
	0x8c8c038f, 0xa1a159f8, 0x89890980, 0x0d0d1a17,
	0xbfbf65da, 0xe6e6d731, 0x424284c6, 0x6868d0b8,
	0x414182c3, 0x999929b0, 0x2d2d5a77, 0x0f0f1e11,
	0xb0b07bcb, 0x5454a8fc, 0xbbbb6dd6, 0x16162c3a,
}

// sbox2: substitution + MDS, byte position 2.
var sbox2 = [256]uint32{
	0x63c6a563, 0x7cf8847c, 0x77ee9977, 0x7bf68d7b,
	0xf2ff0df2, 0x6bd6bd6b, 0x6fdeb16f, 0xc59154c5,
	0x30605030, 0x01020301, 0x67cea967, 0x2b567d2b,
	0xfee719fe, 0xd7b562d7, 0xab4de6ab, 0x76ec9a76,
	0xca8f45ca, 0x821f9d82, 0xc98940c9, 0x7dfa877d,
	0xfaef15fa, 0x59b2eb59, 0x478ec947, 0xf0fb0bf0,
	0xad41ecad, 0xd4b367d4, 0xa25ffda2, 0xaf45eaaf,
	0x9c23bf9c, 0xa453f7a4, 0x72e49672, 0xc09b5bc0,
	0xb775c2b7, 0xfde11cfd, 0x933dae93, 0x264c6a26,
	0x366c5a36, 0x3f7e413f, 0xf7f502f7, 0xcc834fcc,
	0x34685c34, 0xa551f4a5, 0xe5d134e5, 0xf1f908f1,
	0x71e29371, 0xd8ab73d8, 0x31625331, 0x152a3f15,
	0x04080c04, 0xc79552c7, 0x23466523, 0xc39d5ec3,
	0x18302818, 0x9637a196, 0x050a0f05, 0x9a2fb59a,
	0x070e0907, 0x12243612, 0x801b9b80, 0xe2df3de2,
	0xebcd26eb, 0x274e6927, 0xb27fcdb2, 0x75ea9f75,
	0x09121b09, 0x831d9e83, 0x2c58742c, 0x1a342e1a,
	0x1b362d1b, 0x6edcb26e, 0x5ab4ee5a, 0xa05bfba0,
	0x52a4f652, 0x3b764d3b, 0xd6b761d6, 0xb37dceb3,
	0x29527b29, 0xe3dd3ee3, 0x2f5e712f, 0x84139784,
	0x53a6f553, 0xd1b968d1, 0x00000000, 0xedc12ced,
	0x20406020, 0xfce31ffc, 0xb179c8b1, 0x5bb6ed5b,
	0x6ad4be6a, 0xcb8d46cb, 0xbe67d9be, 0x39724b39,
	0x4a94de4a, 0x4c98d44c, 0x58b0e858, 0xcf854acf,
	0xd0bb6bd0, 0xefc52aef, 0xaa4fe5aa, 0xfbed16fb,
	0x4386c543, 0x4d9ad74d, 0x33665533, 0x85119485,
	0x458acf45, 0xf9e910f9, 0x02040602, 0x7ffe817f,
	0x50a0f050, 0x3c78443c, 0x9f25ba9f, 0xa84be3a8,
	0x51a2f351, 0xa35dfea3, 0x4080c040, 0x8f058a8f,
	0x923fad92, 0x9d21bc9d, 0x38704838, 0xf5f104f5,
	0xbc63dfbc, 0xb677c1b6, 0xdaaf75da, 0x21426321,
	0x10203010, 0xffe51aff, 0xf3fd0ef3, 0xd2bf6dd2,
	0xcd814ccd, 0x0c18140c, 0x13263513, 0xecc32fec,
	0x5fbee15f, 0x9735a297, 0x4488cc44, 0x172e3917,
	0xc49357c4, 0xa755f2a7, 0x7efc827e, 0x3d7a473d,
	0x64c8ac64, 0x5dbae75d, 0x19322b19, 0x73e69573,
	0x60c0a060, 0x81199881, 0x4f9ed14f, 0xdca37fdc,
	0x22446622, 0x2a547e2a, 0x903bab90, 0x880b8388,
	0x468cca46, 0xeec729ee, 0xb86bd3b8, 0x14283c14,
	0xdea779de, 0x5ebce25e, 0x0b161d0b, 0xdbad76db,
	0xe0db3be0, 0x32645632, 0x3a744e3a, 0x0a141e0a,
	0x4992db49, 0x060c0a06, 0x24486c24, 0x5cb8e45c,
	0xc29f5dc2, 0xd3bd6ed3, 0xac43efac, 0x62c4a662,
	0x9139a891, 0x9531a495, 0xe4d337e4, 0x79f28b79,
	0xe7d532e7, 0xc88b43c8, 0x376e5937, 0x6ddab76d,
	0x8d018c8d, 0xd5b164d5, 0x4e9cd24e, 0xa949e0a9,
	0x6cd8b46c, 0x56acfa56, 0xf4f307f4, 0xeacf25ea,
	0x65caaf65, 0x7af48e7a, 0xae47e9ae, 0x08101808,
	0xba6fd5ba, 0x78f08878, 0x254a6f25, 0x2e5c722e,
	0x1c38241c, 0xa657f1a6, 0xb473c7b4, 0xc69751c6,
	0xe8cb23e8, 0xdda17cdd, 0x74e89c74, 0x1f3e211f,
	0x4b96dd4b, 0xbd61dcbd, 0x8b0d868b, 0x8a0f858a,
	0x70e09070, 0x3e7c423e, 0xb571c4b5, 0x66ccaa66,
	0x4890d848, 0x03060503, 0xf6f701f6, 0x0e1c120e,
	0x61c2a361, 0x356a5f35, 0x57aef957, 0xb969d0b9,
	0x86179186, 0xc19958c1, 0x1d3a271d, 0x9e27b99e,
	0xe1d938e1, 0xf8eb13f8, 0x982bb398, 0x11223311,
	0x69d2bb69, 0xd9a970d9, 0x8e07898e, 0x9433a794,
	0x9b2db69b, 0x1e3c221e, 0x87159287, 0xe9c920e9,
	0xce8749ce, 0x55aaff55, 0x28507828, 0xdfa57adf,
	0x8c038f8c, 0xa159f8a1, 0x89098089, 0x0d1a170d,
	0xbf65dabf, 0xe6d731e6, 0x4284c642, 0x68d0b868,
	0x4182c341, 0x9929b099, 0x2d5a772d, 0x0f1e110f,
	0xb07bcbb0, 0x54a8fc54, 0xbb6dd6bb, 0x162c3a16,
}

// sbox3: substitution + MDS, byte position 3.
var sbox3 = [256]uint32{
	0xc6a56363, 0xf8847c7c, 0xee997777, 0xf68d7b7b,
	0xff0df2f2, 0xd6bd6b6b, 0xdeb16f6f, 0x9154c5c5,
	0x60503030, 0x02030101, 0xcea96767, 0x567d2b2b,
	0xe719fefe, 0xb562d7d7, 0x4de6abab, 0xec9a7676,
	0x8f45caca, 0x1f9d8282, 0x8940c9c9, 0xfa877d7d,
	0xef15fafa, 0xb2eb5959, 0x8ec94747, 0xfb0bf0f0,
	0x41ecadad, 0xb367d4d4, 0x5ffda2a2, 0x45eaafaf,
	0x23bf9c9c, 0x53f7a4a4, 0xe4967272, 0x9b5bc0c0,
	0x75c2b7b7, 0xe11cfdfd, 0x3dae9393, 0x4c6a2626,
	0x6c5a3636, 0x7e413f3f, 0xf502f7f7, 0x834fcccc,
	0x685c3434, 0x51f4a5a5, 0xd134e5e5, 0xf908f1f1,
	0xe2937171, 0xab73d8d8, 0x62533131, 0x2a3f1515,
	0x080c0404, 0x9552c7c7, 0x46652323, 0x9d5ec3c3,
	0x30281818, 0x37a19696, 0x0a0f0505, 0x2fb59a9a,
	0x0e090707, 0x24361212, 0x1b9b8080, 0xdf3de2e2,
	0xcd26ebeb, 0x4e692727, 0x7fcdb2b2, 0xea9f7575,
	0x121b0909, 0x1d9e8383, 0x58742c2c, 0x342e1a1a,
	0x362d1b1b, 0xdcb26e6e, 0xb4ee5a5a, 0x5bfba0a0,
	0xa4f65252, 0x764d3b3b, 0xb761d6d6, 0x7dceb3b3,
	0x527b2929, 0xdd3ee3e3, 0x5e712f2f, 0x13978484,
	0xa6f55353, 0xb968d1d1, 0x00000000, 0xc12ceded,
	0x40602020, 0xe31ffcfc, 0x79c8b1b1, 0xb6ed5b5b,
	0xd4be6a6a, 0x8d46cbcb, 0x67d9bebe, 0x724b3939,
	0x94de4a4a, 0x98d44c4c, 0xb0e85858, 0x854acfcf,
	0xbb6bd0d0, 0xc52aefef, 0x4fe5aaaa, 0xed16fbfb,
	0x86c54343, 0x9ad74d4d, 0x66553333, 0x11948585,
	0x8acf4545, 0xe910f9f9, 0x04060202, 0xfe817f7f,
	0xa0f05050, 0x78443c3c, 0x25ba9f9f, 0x4be3a8a8,
	0xa2f35151, 0x5dfea3a3, 0x80c04040, 0x058a8f8f,
	0x3fad9292, 0x21bc9d9d, 0x70483838, 0xf104f5f5,
	0x63dfbcbc, 0x77c1b6b6, 0xaf75dada, 0x42632121,
	0x20301010, 0xe51affff, 0xfd0ef3f3, 0xbf6dd2d2,
	0x814ccdcd, 0x18140c0c, 0x26351313, 0xc32fecec,
	0xbee15f5f, 0x35a29797, 0x88cc4444, 0x2e391717,
	0x9357c4c4, 0x55f2a7a7, 0xfc827e7e, 0x7a473d3d,
	0xc8ac6464, 0xbae75d5d, 0x322b1919, 0xe6957373,
	0xc0a06060, 0x19988181, 0x9ed14f4f, 0xa37fdcdc,
	0x44662222, 0x547e2a2a, 0x3bab9090, 0x0b838888,
	0x8cca4646, 0xc729eeee, 0x6bd3b8b8, 0x283c1414,
	0xa779dede, 0xbce25e5e, 0x161d0b0b, 0xad76dbdb,
	0xdb3be0e0, 0x64563232, 0x744e3a3a, 0x141e0a0a,
	0x92db4949, 0x0c0a0606, 0x486c2424, 0xb8e45c5c,
	0x9f5dc2c2, 0xbd6ed3d3, 0x43efacac, 0xc4a66262,
	0x39a89191, 0x31a49595, 0xd337e4e4, 0xf28b7979,
	0xd532e7e7, 0x8b43c8c8, 0x6e593737, 0xdab76d6d,
	0x018c8d8d, 0xb164d5d5, 0x9cd24e4e, 0x49e0a9a9,
	0xd8b46c6c, 0xacfa5656, 0xf307f4f4, 0xcf25eaea,
	0xcaaf6565, 0xf48e7a7a, 0x47e9aeae, 0x10180808,
	0x6fd5baba, 0xf0887878, 0x4a6f2525, 0x5c722e2e,
	0x38241c1c, 0x57f1a6a6, 0x73c7b4b4, 0x9751c6c6,
	0xcb23e8e8, 0xa17cdddd, 0xe89c7474, 0x3e211f1f,
	0x96dd4b4b, 0x61dcbdbd, 0x0d868b8b, 0x0f858a8a,
	0xe0907070, 0x7c423e3e, 0x71c4b5b5, 0xccaa6666,
	0x90d84848, 0x06050303, 0xf701f6f6, 0x1c120e0e,
	0xc2a36161, 0x6a5f3535, 0xaef95757, 0x69d0b9b9,
	0x17918686, 0x9958c1c1, 0x3a271d1d, 0x27b99e9e,
	0xd938e1e1, 0xeb13f8f8, 0x2bb39898, 0x22331111,
	0xd2bb6969, 0xa970d9d9, 0x07898e8e, 0x33a79494,
	0x2db69b9b, 0x3c221e1e, 0x15928787, 0xc920e9e9,
	0x8749cece, 0xaaff5555, 0x50782828, 0xa57adfdf,
	0x038f8c8c, 0x59f8a1a1, 0x09808989, 0x1a170d0d,
	0x65dabfbf, 0xd731e6e6, 0x84c64242, 0xd0b86868,
	0x82c34141, 0x29b09999, 0x5a772d2d, 0x1e110f0f,
	0x7bcbb0b0, 0xa8fc5454, 0x6dd6bbbb, 0x2c3a1616,
}
