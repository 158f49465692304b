package query

import "math"

// Синус, косинус и арктангенс по алгоритмам fdlibm 5.3. Результаты совпадают до бита
// с Math.sin, Math.cos и Math.atan2 браузерных движков, а math.Sin и math.Cos расходятся
// с ними в последнем разряде. Каждое произведение, которое дальше складывается, обернуто
// в float64(): иначе компилятор вправе слить его со сложением в FMA.

func highWord(x float64) int32 {
	return int32(math.Float64bits(x) >> 32)
}

func lowWord(x float64) uint32 {
	return uint32(math.Float64bits(x))
}

func fromWords(hi int32, lo uint32) float64 {
	return math.Float64frombits(uint64(uint32(hi))<<32 | uint64(lo))
}

const (
	sinC1 = -1.66666666666666324348e-01 // 0xBFC55555, 0x55555549
	sinC2 = 8.33333333332248946124e-03  // 0x3F811111, 0x1110F8A6
	sinC3 = -1.98412698298579493134e-04 // 0xBF2A01A0, 0x19C161D5
	sinC4 = 2.75573137070700676789e-06  // 0x3EC71DE3, 0x57B1FE7D
	sinC5 = -2.50507602534068634195e-08 // 0xBE5AE5E6, 0x8A2B9CEB
	sinC6 = 1.58969099521155010221e-10  // 0x3DE5D93A, 0x5ACFD57C

	cosC1 = 4.16666666666666019037e-02  // 0x3FA55555, 0x5555554C
	cosC2 = -1.38888888888741095749e-03 // 0xBF56C16C, 0x16C15177
	cosC3 = 2.48015872894767294178e-05  // 0x3EFA01A0, 0x19CB1590
	cosC4 = -2.75573143513906633035e-07 // 0xBE927E4F, 0x809C52AD
	cosC5 = 2.08757232129817482790e-09  // 0x3E21EE9E, 0xBDB4B1C4
	cosC6 = -1.13596475577881948265e-11 // 0xBDA8FAE9, 0xBE8838D4
)

// kernelSin - синус на [-pi/4, pi/4]; y - хвост аргумента, iy == 0 означает y == 0
func kernelSin(x, y float64, iy int) float64 {
	ix := highWord(x) & 0x7fffffff
	if ix < 0x3e400000 { // |x| < 2^-27
		return x
	}
	z := float64(x * x)
	v := float64(z * x)
	r := sinC2 + float64(z*(sinC3+float64(z*(sinC4+float64(z*(sinC5+float64(z*sinC6)))))))
	if iy == 0 {
		return x + float64(v*(sinC1+float64(z*r)))
	}
	return x - ((float64(z*(float64(0.5*y)-float64(v*r))) - y) - float64(v*sinC1))
}

// kernelCos - косинус на [-pi/4, pi/4]
func kernelCos(x, y float64) float64 {
	ix := highWord(x) & 0x7fffffff
	if ix < 0x3e400000 { // |x| < 2^-27
		return 1
	}
	z := float64(x * x)
	r := float64(z * (cosC1 + float64(z*(cosC2+float64(z*(cosC3+float64(z*(cosC4+float64(z*(cosC5+float64(z*cosC6)))))))))))
	zr := float64(z * r)
	xy := float64(x * y)
	if ix < 0x3fd33333 { // |x| < 0.3
		return 1 - (float64(0.5*z) - (zr - xy))
	}
	var qx float64
	if ix > 0x3fe90000 { // |x| > 0.78125
		qx = 0.28125
	} else {
		qx = fromWords(ix-0x00200000, 0) // x/4
	}
	hz := float64(0.5*z) - qx
	a := 1 - qx
	return a - (hz - (zr - xy))
}

const (
	two24  = 1.67772160000000000000e+07 // 0x41700000, 0x00000000
	twon24 = 5.96046447753906250000e-08 // 0x3E700000, 0x00000000

	invPio2 = 6.36619772367581382433e-01 // 0x3FE45F30, 0x6DC9C883
	pio21   = 1.57079632673412561417e+00 // 0x3FF921FB, 0x54400000
	pio21t  = 6.07710050650619224932e-11 // 0x3DD0B461, 0x1A626331
	pio22   = 6.07710050630396597660e-11 // 0x3DD0B461, 0x1A600000
	pio22t  = 2.02226624879595063154e-21 // 0x3BA3198A, 0x2E037073
	pio23   = 2.02226624871116645580e-21 // 0x3BA3198A, 0x2E000000
	pio23t  = 8.47842766036889956997e-32 // 0x397B839A, 0x252049C1
)

// twoOverPi - 2/pi по 24 бита
var twoOverPi = [...]int32{
	0xA2F983, 0x6E4E44, 0x1529FC, 0x2757D1, 0xF534DD, 0xC0DB62, 0x95993C,
	0x439041, 0xFE5163, 0xABDEBB, 0xC561B7, 0x246E3A, 0x424DD2, 0xE00649,
	0x2EEA09, 0xD1921C, 0xFE1DEB, 0x1CB129, 0xA73EE8, 0x8235F5, 0x2EBB44,
	0x84E99C, 0x7026B4, 0x5F7E41, 0x3991D6, 0x398353, 0x39F49C, 0x845F8B,
	0xBDF928, 0x3B1FF8, 0x97FFDE, 0x05980F, 0xEF2F11, 0x8B5A0A, 0x6D1F6D,
	0x367ECF, 0x27CB09, 0xB74F46, 0x3F669E, 0x5FEA2D, 0x7527BA, 0xC7EBE5,
	0xF17B3D, 0x0739F7, 0x8A5292, 0xEA6BFB, 0x5FB11F, 0x8D5D08, 0x560330,
	0x46FC7B, 0x6BABF0, 0xCFBC20, 0x9AF436, 0x1DA9E3, 0x91615E, 0xE61B08,
	0x659985, 0x5F14A0, 0x68408D, 0xFFD880, 0x4D7327, 0x310606, 0x1556CA,
	0x73A8C9, 0x60E27B, 0xC08C6B,
}

// npio2HighWords[n-1] - старшее слово n*pi/2
var npio2HighWords = [...]int32{
	0x3FF921FB, 0x400921FB, 0x4012D97C, 0x401921FB, 0x401F6A7A, 0x4022D97C,
	0x4025FDBB, 0x402921FB, 0x402C463A, 0x402F6A7A, 0x4031475C, 0x4032D97C,
	0x40346B9C, 0x4035FDBB, 0x40378FDB, 0x403921FB, 0x403AB41B, 0x403C463A,
	0x403DD85A, 0x403F6A7A, 0x40407E4C, 0x4041475C, 0x4042106C, 0x4042D97C,
	0x4043A28C, 0x40446B9C, 0x404534AC, 0x4045FDBB, 0x4046C6CB, 0x40478FDB,
	0x404858EB, 0x404921FB,
}

// pio2Parts - pi/2 по 24 бита в каждом слагаемом
var pio2Parts = [...]float64{
	1.57079625129699707031e+00, // 0x3FF921FB, 0x40000000
	7.54978941586159635335e-08, // 0x3E74442D, 0x00000000
	5.39030252995776476554e-15, // 0x3CF84698, 0x80000000
	3.28200341580791294123e-22, // 0x3B78CC51, 0x60000000
	1.27065575308067607349e-29, // 0x39F01B83, 0x80000000
	1.22933308981111328932e-36, // 0x387A2520, 0x40000000
	2.73370053816464559624e-44, // 0x36E38222, 0x80000000
	2.16741683877804819444e-51, // 0x3569F31D, 0x00000000
}

// remPio2 возвращает n и x - n*pi/2 в виде суммы y0 + y1
func remPio2(x float64) (int32, float64, float64) {
	hx := highWord(x)
	ix := hx & 0x7fffffff

	if ix <= 0x3fe921fb { // |x| ~<= pi/4
		return 0, x, 0
	}

	if ix < 0x4002d97c { // |x| < 3pi/4
		if hx > 0 {
			z := x - pio21
			if ix != 0x3ff921fb {
				y0 := z - pio21t
				return 1, y0, (z - y0) - pio21t
			}
			// рядом с pi/2 нужна вторая часть константы
			z -= pio22
			y0 := z - pio22t
			return 1, y0, (z - y0) - pio22t
		}
		z := x + pio21
		if ix != 0x3ff921fb {
			y0 := z + pio21t
			return -1, y0, (z - y0) + pio21t
		}
		z += pio22
		y0 := z + pio22t
		return -1, y0, (z - y0) + pio22t
	}

	if ix <= 0x413921fb { // |x| ~<= 2^19*(pi/2)
		t := math.Abs(x)
		n := int32(float64(t*invPio2) + 0.5)
		fn := float64(n)
		r := t - float64(fn*pio21)
		w := float64(fn * pio21t)
		y0 := r - w
		if n >= 32 || ix == npio2HighWords[n-1] {
			j := ix >> 20
			i := j - ((highWord(y0) >> 20) & 0x7ff)
			if i > 16 {
				t = r
				w = float64(fn * pio22)
				r = t - w
				w = float64(fn*pio22t) - ((t - r) - w)
				y0 = r - w
				i = j - ((highWord(y0) >> 20) & 0x7ff)
				if i > 49 {
					t = r
					w = float64(fn * pio23)
					r = t - w
					w = float64(fn*pio23t) - ((t - r) - w)
					y0 = r - w
				}
			}
		}
		y1 := (r - y0) - w
		if hx < 0 {
			return -n, -y0, -y1
		}
		return n, y0, y1
	}

	if ix >= 0x7ff00000 { // Inf или NaN
		return 0, x - x, x - x
	}

	// |x| раскладывается на три 24-битных слагаемых с общим порядком e0
	e0 := int((ix >> 20) - 1046)
	z := fromWords(ix-int32(e0<<20), lowWord(x))
	var tx [3]float64
	for i := 0; i < 2; i++ {
		tx[i] = float64(int32(z))
		z = float64((z - tx[i]) * two24)
	}
	tx[2] = z
	nx := 3
	for tx[nx-1] == 0 {
		nx--
	}

	n, y0, y1 := kernelRemPio2(tx[:nx], e0)
	if hx < 0 {
		return -n, -y0, -y1
	}
	return n, y0, y1
}

// kernelRemPio2 - редукция Пейна-Хэнека для больших аргументов с точностью 64 бита
func kernelRemPio2(x []float64, e0 int) (int32, float64, float64) {
	const jk = 4

	var (
		iq       [20]int32
		f, q, fq [20]float64
	)

	jx := len(x) - 1
	jv := (e0 - 3) / 24
	if jv < 0 {
		jv = 0
	}
	q0 := e0 - 24*(jv+1)

	for i, j := 0, jv-jx; i <= jx+jk; i, j = i+1, j+1 {
		if j >= 0 {
			f[i] = float64(twoOverPi[j])
		}
	}
	for i := 0; i <= jk; i++ {
		fw := 0.0
		for j := 0; j <= jx; j++ {
			fw += float64(x[j] * f[jx+i-j])
		}
		q[i] = fw
	}

	jz := jk
	var (
		z  float64
		n  int32
		ih int32
	)
	for {
		z = q[jz]
		for i, j := 0, jz; j > 0; i, j = i+1, j-1 {
			fw := float64(int32(float64(twon24 * z)))
			iq[i] = int32(z - float64(two24*fw))
			z = q[j-1] + fw
		}

		z = math.Ldexp(z, q0)
		z -= float64(8 * math.Floor(float64(z*0.125)))
		n = int32(z)
		z -= float64(n)
		ih = 0
		switch {
		case q0 > 0:
			i := iq[jz-1] >> (24 - q0)
			n += i
			iq[jz-1] -= i << (24 - q0)
			ih = iq[jz-1] >> (23 - q0)
		case q0 == 0:
			ih = iq[jz-1] >> 23
		case z >= 0.5:
			ih = 2
		}

		if ih > 0 { // остаток больше 0.5
			n++
			carry := false
			for i := 0; i < jz; i++ {
				j := iq[i]
				if !carry {
					if j != 0 {
						carry = true
						iq[i] = 0x1000000 - j
					}
				} else {
					iq[i] = 0xffffff - j
				}
			}
			switch q0 {
			case 1:
				iq[jz-1] &= 0x7fffff
			case 2:
				iq[jz-1] &= 0x3fffff
			}
			if ih == 2 {
				z = 1 - z
				if carry {
					z -= math.Ldexp(1, q0)
				}
			}
		}

		if z != 0 {
			break
		}
		var j int32
		for i := jz - 1; i >= jk; i-- {
			j |= iq[i]
		}
		if j != 0 {
			break
		}

		// все биты ушли в сокращение, добираем слагаемые 2/pi
		k := 1
		for jk >= k && iq[jk-k] == 0 {
			k++
		}
		for i := jz + 1; i <= jz+k; i++ {
			f[jx+i] = float64(twoOverPi[jv+i])
			fw := 0.0
			for j := 0; j <= jx; j++ {
				fw += float64(x[j] * f[jx+i-j])
			}
			q[i] = fw
		}
		jz += k
	}

	if z == 0 {
		jz--
		q0 -= 24
		for jz > 0 && iq[jz] == 0 {
			jz--
			q0 -= 24
		}
	} else {
		z = math.Ldexp(z, -q0)
		if z >= two24 {
			fw := float64(int32(float64(twon24 * z)))
			iq[jz] = int32(z - float64(two24*fw))
			jz++
			q0 += 24
			iq[jz] = int32(fw)
		} else {
			iq[jz] = int32(z)
		}
	}

	fw := math.Ldexp(1, q0)
	for i := jz; i >= 0; i-- {
		q[i] = float64(fw * float64(iq[i]))
		fw = float64(fw * twon24)
	}

	for i := jz; i >= 0; i-- {
		fw = 0
		for k := 0; k <= jk && k <= jz-i; k++ {
			fw += float64(pio2Parts[k] * q[i+k])
		}
		fq[jz-i] = fw
	}

	fw = 0
	for i := jz; i >= 0; i-- {
		fw += fq[i]
	}
	y0 := fw
	fw = fq[0] - fw
	for i := 1; i <= jz; i++ {
		fw += fq[i]
	}
	y1 := fw
	if ih != 0 {
		y0, y1 = -y0, -y1
	}
	return n & 7, y0, y1
}

func sin(x float64) float64 {
	ix := highWord(x) & 0x7fffffff
	switch {
	case ix <= 0x3fe921fb:
		return kernelSin(x, 0, 0)
	case ix >= 0x7ff00000:
		return x - x
	}

	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kernelSin(y0, y1, 1)
	case 1:
		return kernelCos(y0, y1)
	case 2:
		return -kernelSin(y0, y1, 1)
	default:
		return -kernelCos(y0, y1)
	}
}

func cos(x float64) float64 {
	ix := highWord(x) & 0x7fffffff
	switch {
	case ix <= 0x3fe921fb:
		return kernelCos(x, 0)
	case ix >= 0x7ff00000:
		return x - x
	}

	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kernelCos(y0, y1)
	case 1:
		return -kernelSin(y0, y1, 1)
	case 2:
		return -kernelCos(y0, y1)
	default:
		return kernelSin(y0, y1, 1)
	}
}

var (
	atanHi = [...]float64{
		4.63647609000806093515e-01, // atan(0.5)hi 0x3FDDAC67, 0x0561BB4F
		7.85398163397448278999e-01, // atan(1.0)hi 0x3FE921FB, 0x54442D18
		9.82793723247329054082e-01, // atan(1.5)hi 0x3FEF730B, 0xD281F69B
		1.57079632679489655800e+00, // atan(inf)hi 0x3FF921FB, 0x54442D18
	}
	atanLo = [...]float64{
		2.26987774529616870924e-17, // atan(0.5)lo 0x3C7A2B7F, 0x222F65E2
		3.06161699786838301793e-17, // atan(1.0)lo 0x3C81A626, 0x33145C07
		1.39033110312309984516e-17, // atan(1.5)lo 0x3C700788, 0x7AF0CBBD
		6.12323399573676603587e-17, // atan(inf)lo 0x3C91A626, 0x33145C07
	}
	atanT = [...]float64{
		3.33333333333329318027e-01,  // 0x3FD55555, 0x5555550D
		-1.99999999998764832476e-01, // 0xBFC99999, 0x9998EBC4
		1.42857142725034663711e-01,  // 0x3FC24924, 0x920083FF
		-1.11111104054623557880e-01, // 0xBFBC71C6, 0xFE231671
		9.09088713343650656196e-02,  // 0x3FB745CD, 0xC54C206E
		-7.69187620504482999495e-02, // 0xBFB3B0F2, 0xAF749A6D
		6.66107313738753120669e-02,  // 0x3FB10D66, 0xA0D03D51
		-5.83357013379057348645e-02, // 0xBFADDE2D, 0x52DEFD9A
		4.97687799461593236017e-02,  // 0x3FA97B4B, 0x24760DEB
		-3.65315727442169155270e-02, // 0xBFA2B444, 0x2C6A6C2F
		1.62858201153657823623e-02,  // 0x3F90AD3A, 0xE322DA11
	}
)

func atan(x float64) float64 {
	hx := highWord(x)
	ix := hx & 0x7fffffff
	if ix >= 0x44100000 { // |x| >= 2^66
		if math.IsNaN(x) {
			return x + x
		}
		if hx > 0 {
			return atanHi[3] + atanLo[3]
		}
		return -atanHi[3] - atanLo[3]
	}

	id := -1
	if ix < 0x3fdc0000 { // |x| < 0.4375
		if ix < 0x3e400000 { // |x| < 2^-27
			return x
		}
	} else {
		x = math.Abs(x)
		switch {
		case ix < 0x3fe60000: // 7/16 <= |x| < 11/16
			id = 0
			x = (float64(2*x) - 1) / (2 + x)
		case ix < 0x3ff30000: // 11/16 <= |x| < 19/16
			id = 1
			x = (x - 1) / (x + 1)
		case ix < 0x40038000: // |x| < 2.4375
			id = 2
			x = (x - 1.5) / (1 + float64(1.5*x))
		default:
			id = 3
			x = -1 / x
		}
	}

	z := float64(x * x)
	w := float64(z * z)
	s1 := float64(z * (atanT[0] + float64(w*(atanT[2]+float64(w*(atanT[4]+float64(w*(atanT[6]+float64(w*(atanT[8]+float64(w*atanT[10])))))))))))
	s2 := float64(w * (atanT[1] + float64(w*(atanT[3]+float64(w*(atanT[5]+float64(w*(atanT[7]+float64(w*atanT[9])))))))))
	if id < 0 {
		return x - float64(x*(s1+s2))
	}
	z = atanHi[id] - ((float64(x*(s1+s2)) - atanLo[id]) - x)
	if hx < 0 {
		return -z
	}
	return z
}

// Переменные, а не константы: выражения из одних констант Go считает точно, без округления до float64.
var (
	piO4 = 7.8539816339744827900e-01 // 0x3FE921FB, 0x54442D18
	piO2 = 1.5707963267948965580e+00 // 0x3FF921FB, 0x54442D18
	pi   = 3.1415926535897931160e+00 // 0x400921FB, 0x54442D18
	piLo = 1.2246467991473531772e-16 // 0x3CA1A626, 0x33145C07
)

func atan2(y, x float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return x + y
	}
	if x == 1 {
		return atan(y)
	}

	hx, lx := highWord(x), lowWord(x)
	hy, ly := highWord(y), lowWord(y)
	ix, iy := hx&0x7fffffff, hy&0x7fffffff
	m := (hy>>31)&1 | (hx>>30)&2 // 2*sign(x) + sign(y)

	if uint32(iy)|ly == 0 { // y = ±0
		switch m {
		case 0, 1:
			return y
		case 2:
			return pi
		default:
			return -pi
		}
	}
	if uint32(ix)|lx == 0 { // x = ±0
		if hy < 0 {
			return -piO2
		}
		return piO2
	}
	if ix == 0x7ff00000 { // x = ±Inf
		if iy == 0x7ff00000 {
			switch m {
			case 0:
				return piO4
			case 1:
				return -piO4
			case 2:
				return 3 * piO4
			default:
				return -3 * piO4
			}
		}
		switch m {
		case 0:
			return 0
		case 1:
			return math.Copysign(0, -1)
		case 2:
			return pi
		default:
			return -pi
		}
	}
	if iy == 0x7ff00000 { // y = ±Inf
		if hy < 0 {
			return -piO2
		}
		return piO2
	}

	var z float64
	k := (iy - ix) >> 20
	switch {
	case k > 60: // |y/x| > 2^60
		z = piO2 + 0.5*piLo
		m &= 1
	case hx < 0 && k < -60: // 0 > |y|/x > -2^-60
		z = 0
	default:
		z = atan(math.Abs(y / x))
	}
	switch m {
	case 0:
		return z
	case 1:
		return -z
	case 2:
		return pi - (z - piLo)
	default:
		return (z - piLo) - pi
	}
}
